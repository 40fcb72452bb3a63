package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vcscsvcscs/health-pathway-advisor/internal/advisor"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

const labelWidth = 18

// FormatAdvice renders an advice result for the terminal. Plain output skips
// the surrounding boxes so it can be piped or diffed.
func FormatAdvice(metrics model.HealthMetrics, result model.AdviceResult, plain bool) string {
	sections := []struct {
		title string
		body  string
	}{
		{"Your metrics", formatMetrics(metrics)},
		{"Body mass index", formatBMI(result.BMI)},
		{"Energy", formatEnergy(result)},
		{"Fitness plan", NumberedList(result.FitnessPlan)},
		{"Diet plan", NumberedList(result.DietPlan)},
	}

	var b strings.Builder
	for _, s := range sections {
		if plain {
			b.WriteString(Header(s.title))
			b.WriteString("\n")
			b.WriteString(s.body)
		} else {
			b.WriteString(RenderBox(s.title, s.body))
		}
		b.WriteString("\n\n")
	}
	b.WriteString(Dim(result.Disclaimer))
	b.WriteString("\n")
	return b.String()
}

func formatMetrics(m model.HealthMetrics) string {
	return strings.Join([]string{
		KeyValue("Weight", fmt.Sprintf("%g kg", m.Weight), labelWidth),
		KeyValue("Height", fmt.Sprintf("%g cm", m.Height), labelWidth),
		KeyValue("Age", fmt.Sprintf("%d", m.Age), labelWidth),
		KeyValue("Gender", string(m.Gender), labelWidth),
		KeyValue("Activity level", string(m.ActivityLevel), labelWidth),
	}, "\n")
}

func formatBMI(bmi model.BMIResult) string {
	return strings.Join([]string{
		KeyValue("BMI", Bold(BMIValue(bmi.Value)), labelWidth),
		KeyValue("Category", CategoryIndicator(bmi), labelWidth),
	}, "\n")
}

func formatEnergy(result model.AdviceResult) string {
	lines := []string{
		KeyValue("BMR", Kcal(int(math.Round(result.BMR))), labelWidth),
		KeyValue("Maintenance", Bold(Kcal(result.CalorieNeeds)), labelWidth),
	}
	if adjustment := result.AdjustedCalories - result.CalorieNeeds; adjustment != 0 {
		lines = append(lines,
			KeyValue("Adjustment", SignedKcal(adjustment), labelWidth),
			KeyValue("Daily target", Bold(Kcal(result.AdjustedCalories)), labelWidth),
		)
	}
	return strings.Join(lines, "\n")
}

// FormatOptions renders the accepted input values and form defaults.
func FormatOptions(c advisor.Catalogue) string {
	genders := make([]string, 0, len(c.Genders))
	for _, g := range c.Genders {
		genders = append(genders, string(g))
	}

	var b strings.Builder
	b.WriteString(Header("Genders"))
	b.WriteString("\n")
	b.WriteString(strings.Join(genders, ", "))
	b.WriteString("\n\n")

	b.WriteString(Header("Activity levels"))
	b.WriteString("\n")
	for _, o := range c.ActivityLevels {
		fmt.Fprintf(&b, "%-12s %-12s x%-6g %s\n",
			o.Value, o.Label, o.Multiplier, Dim(o.Description))
	}
	b.WriteString("\n")

	b.WriteString(Header("Accepted ranges"))
	b.WriteString("\n")
	b.WriteString(KeyValue("Weight (kg)", fmt.Sprintf("%g-%g", c.WeightRange.Min, c.WeightRange.Max), labelWidth))
	b.WriteString("\n")
	b.WriteString(KeyValue("Height (cm)", fmt.Sprintf("%g-%g", c.HeightRange.Min, c.HeightRange.Max), labelWidth))
	b.WriteString("\n")
	b.WriteString(KeyValue("Age (years)", fmt.Sprintf("%g-%g", c.AgeRange.Min, c.AgeRange.Max), labelWidth))
	b.WriteString("\n\n")

	b.WriteString(Header("Defaults"))
	b.WriteString("\n")
	b.WriteString(KeyValue("Age", fmt.Sprintf("%d", c.Defaults.Age), labelWidth))
	b.WriteString("\n")
	b.WriteString(KeyValue("Gender", string(c.Defaults.Gender), labelWidth))
	b.WriteString("\n")
	b.WriteString(KeyValue("Activity level", string(c.Defaults.ActivityLevel), labelWidth))
	b.WriteString("\n")
	return b.String()
}
