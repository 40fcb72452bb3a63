// Package advisor computes BMI, energy needs and rule-based fitness and diet
// plans from a validated set of health metrics. Everything here is a pure
// function of its arguments and is safe for concurrent use.
package advisor

import (
	"fmt"

	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

// Disclaimer accompanies every advice result.
const Disclaimer = "The recommendations provided are general guidelines. Please consult with healthcare professionals before making significant changes to your diet or exercise routines."

// ComputeAdvice validates the metrics and assembles BMI, energy needs and both
// plans. On error the zero AdviceResult is returned.
func ComputeAdvice(m model.HealthMetrics) (model.AdviceResult, error) {
	if err := ValidateMetrics(m); err != nil {
		return model.AdviceResult{}, err
	}

	bmi, err := ComputeBMI(m.Weight, m.Height)
	if err != nil {
		return model.AdviceResult{}, fmt.Errorf("compute bmi: %w", err)
	}

	energy, err := ComputeEnergy(m)
	if err != nil {
		return model.AdviceResult{}, fmt.Errorf("compute energy: %w", err)
	}

	return model.AdviceResult{
		BMI:              bmi,
		BMR:              energy.BMR,
		CalorieNeeds:     energy.CalorieNeeds,
		AdjustedCalories: AdjustedCalories(bmi.Category, energy.CalorieNeeds),
		FitnessPlan:      FitnessPlan(bmi.Category),
		DietPlan:         DietPlan(bmi.Category, energy.CalorieNeeds),
		Disclaimer:       Disclaimer,
	}, nil
}
