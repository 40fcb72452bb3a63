package advisor

import (
	"math"
	"strconv"

	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

// BMI category thresholds, lower bound inclusive
const (
	HealthyThreshold    = 18.5
	OverweightThreshold = 25.0
	ObeseThreshold      = 30.0
)

// ComputeBMI computes the body-mass index for a weight in kilograms and a
// height in centimeters. The category is taken from the unrounded value; the
// reported value is rounded half away from zero to one decimal place.
func ComputeBMI(weightKg, heightCm float64) (model.BMIResult, error) {
	if !isPositive(weightKg) {
		return model.BMIResult{}, invalidInput("weight", strconv.FormatFloat(weightKg, 'g', -1, 64), "must be positive")
	}
	if !isPositive(heightCm) {
		return model.BMIResult{}, invalidInput("height", strconv.FormatFloat(heightCm, 'g', -1, 64), "must be positive")
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	if math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return model.BMIResult{}, invalidInput("height", strconv.FormatFloat(heightCm, 'g', -1, 64), "is too small")
	}

	category := Classify(bmi)
	return model.BMIResult{
		Value:    round(bmi, 1),
		Category: category,
		Severity: SeverityOf(category),
	}, nil
}

// Classify partitions finite BMI values into categories.
func Classify(bmi float64) model.Category {
	switch {
	case bmi < HealthyThreshold:
		return model.CategoryUnderweight
	case bmi < OverweightThreshold:
		return model.CategoryHealthy
	case bmi < ObeseThreshold:
		return model.CategoryOverweight
	default:
		return model.CategoryObese
	}
}

// SeverityOf returns the presentation tag for a category. Unrecognized
// categories get the Healthy tag, consistent with the plan fallback.
func SeverityOf(c model.Category) model.Severity {
	switch c {
	case model.CategoryUnderweight, model.CategoryOverweight:
		return model.SeverityWarning
	case model.CategoryObese:
		return model.SeverityDanger
	default:
		return model.SeveritySuccess
	}
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// round rounds half away from zero
func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
