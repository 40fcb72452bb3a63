package advisor

import (
	"math"
	"strconv"

	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// ActivityMultiplier returns the TDEE scale factor for an activity level.
func ActivityMultiplier(level model.ActivityLevel) (float64, error) {
	m, ok := activityMultipliers[level]
	if !ok {
		return 0, unknownEnum("activity_level", string(level))
	}
	return m, nil
}

// ComputeBMR estimates basal metabolic rate with the revised Harris-Benedict equation.
func ComputeBMR(m model.HealthMetrics) (float64, error) {
	age := float64(m.Age)
	switch m.Gender {
	case model.GenderMale:
		return 88.362 + 13.397*m.Weight + 4.799*m.Height - 5.677*age, nil
	case model.GenderFemale:
		return 447.593 + 9.247*m.Weight + 3.098*m.Height - 4.330*age, nil
	default:
		return 0, unknownEnum("gender", string(m.Gender))
	}
}

// ComputeTDEE scales a BMR by the activity multiplier and rounds half away from zero.
func ComputeTDEE(bmr float64, level model.ActivityLevel) (int, error) {
	mult, err := ActivityMultiplier(level)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(bmr) || math.IsInf(bmr, 0) {
		return 0, invalidInput("bmr", strconv.FormatFloat(bmr, 'g', -1, 64), "must be a number")
	}
	return int(math.Round(bmr * mult)), nil
}

// ComputeEnergy runs BMR and TDEE for a metrics record.
func ComputeEnergy(m model.HealthMetrics) (model.EnergyResult, error) {
	bmr, err := ComputeBMR(m)
	if err != nil {
		return model.EnergyResult{}, err
	}
	tdee, err := ComputeTDEE(bmr, m.ActivityLevel)
	if err != nil {
		return model.EnergyResult{}, err
	}
	return model.EnergyResult{BMR: bmr, CalorieNeeds: tdee}, nil
}
