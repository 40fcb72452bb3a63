package model

import "fmt"

// Gender selects the BMR coefficient set
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel represents how active a user is during a typical week
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

// RawMetrics holds user input exactly as collected, before parsing
type RawMetrics struct {
	Weight        string
	Height        string
	Age           string
	Gender        string
	ActivityLevel string
}

// HealthMetrics represents a validated set of biometric inputs.
// Values are only constructed by the validator and are passed by value.
type HealthMetrics struct {
	Weight        float64       `json:"weight"` // kg
	Height        float64       `json:"height"` // cm
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// Category is the BMI classification
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryUnderweight
	CategoryHealthy
	CategoryOverweight
	CategoryObese
)

func (c Category) String() string {
	switch c {
	case CategoryUnderweight:
		return "Underweight"
	case CategoryHealthy:
		return "Healthy"
	case CategoryOverweight:
		return "Overweight"
	case CategoryObese:
		return "Obese"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// MarshalText encodes the category by name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name written by MarshalText
func (c *Category) UnmarshalText(text []byte) error {
	for candidate := CategoryUnknown; candidate <= CategoryObese; candidate++ {
		if string(text) == candidate.String() {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown BMI category %q", text)
}

// Severity is a presentation hint attached to a BMI category
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
)

// BMIResult represents a computed body-mass index
type BMIResult struct {
	Value    float64  `json:"value"` // rounded to one decimal place
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
}

// EnergyResult represents the estimated daily energy expenditure
type EnergyResult struct {
	BMR          float64 `json:"bmr"`
	CalorieNeeds int     `json:"calorie_needs"` // kcal/day
}

// Plan is an ordered list of recommendations, displayed as a numbered list
type Plan []string

// AdviceResult aggregates everything computed for one set of metrics
type AdviceResult struct {
	BMI              BMIResult `json:"bmi"`
	BMR              float64   `json:"bmr"`
	CalorieNeeds     int       `json:"calorie_needs"`
	AdjustedCalories int       `json:"adjusted_calories"`
	FitnessPlan      Plan      `json:"fitness_plan"`
	DietPlan         Plan      `json:"diet_plan"`
	Disclaimer       string    `json:"disclaimer"`
}
