package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/advisor"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

// metricsFlags collects raw metric text; validation happens in the engine
// so the CLI reports the same errors as the API.
type metricsFlags struct {
	weight   string
	height   string
	age      string
	gender   string
	activity string
}

func (f *metricsFlags) bind(cmd *cobra.Command) {
	defaults := advisor.Options().Defaults

	cmd.Flags().StringVarP(&f.weight, "weight", "w", "", "Weight in kilograms (10-300)")
	cmd.Flags().StringVarP(&f.height, "height", "H", "", "Height in centimeters (50-250)")
	cmd.Flags().StringVarP(&f.age, "age", "a", strconv.Itoa(defaults.Age), "Age in years (1-120)")
	cmd.Flags().StringVarP(&f.gender, "gender", "g", string(defaults.Gender), "Gender: male or female")
	cmd.Flags().StringVarP(&f.activity, "activity", "l", string(defaults.ActivityLevel),
		"Activity level: sedentary, light, moderate, active or very-active")

	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")
}

func (f *metricsFlags) raw() model.RawMetrics {
	return model.RawMetrics{
		Weight:        f.weight,
		Height:        f.height,
		Age:           f.age,
		Gender:        f.gender,
		ActivityLevel: f.activity,
	}
}
