package advisor

import "github.com/vcscsvcscs/health-pathway-advisor/pkg/model"

// ActivityOption describes one selectable activity level
type ActivityOption struct {
	Value       model.ActivityLevel `json:"value"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
	Multiplier  float64             `json:"multiplier"`
}

// FormDefaults are the initial values offered by an input form
type FormDefaults struct {
	Age           int                 `json:"age"`
	Gender        model.Gender        `json:"gender"`
	ActivityLevel model.ActivityLevel `json:"activity_level"`
}

// Catalogue lists the accepted input values for presentation layers
type Catalogue struct {
	Genders        []model.Gender   `json:"genders"`
	ActivityLevels []ActivityOption `json:"activity_levels"`
	WeightRange    Range            `json:"weight_range"`
	HeightRange    Range            `json:"height_range"`
	AgeRange       Range            `json:"age_range"`
	Defaults       FormDefaults     `json:"defaults"`
}

// Options returns a freshly built catalogue, ordered from least to most active.
func Options() Catalogue {
	levels := []struct {
		value       model.ActivityLevel
		label       string
		description string
	}{
		{model.ActivitySedentary, "Sedentary", "little to no exercise"},
		{model.ActivityLight, "Light", "exercise 1-3 days/week"},
		{model.ActivityModerate, "Moderate", "exercise 3-5 days/week"},
		{model.ActivityActive, "Active", "exercise 6-7 days/week"},
		{model.ActivityVeryActive, "Very Active", "physical job or 2x daily training"},
	}

	options := make([]ActivityOption, 0, len(levels))
	for _, l := range levels {
		options = append(options, ActivityOption{
			Value:       l.value,
			Label:       l.label,
			Description: l.description,
			Multiplier:  activityMultipliers[l.value],
		})
	}

	return Catalogue{
		Genders:        []model.Gender{model.GenderMale, model.GenderFemale},
		ActivityLevels: options,
		WeightRange:    WeightRange,
		HeightRange:    HeightRange,
		AgeRange:       AgeRange,
		Defaults: FormDefaults{
			Age:           25,
			Gender:        model.GenderMale,
			ActivityLevel: model.ActivityModerate,
		},
	}
}
