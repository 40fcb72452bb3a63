package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

func TestComputeAdvice_HealthyFemale(t *testing.T) {
	m := model.HealthMetrics{
		Weight:        60,
		Height:        160,
		Age:           25,
		Gender:        model.GenderFemale,
		ActivityLevel: model.ActivitySedentary,
	}

	advice, err := ComputeAdvice(m)
	require.NoError(t, err)

	assert.Equal(t, 23.4, advice.BMI.Value)
	assert.Equal(t, model.CategoryHealthy, advice.BMI.Category)
	assert.Equal(t, model.SeveritySuccess, advice.BMI.Severity)
	assert.InDelta(t, 1389.843, advice.BMR, 1e-9)
	assert.Equal(t, 1668, advice.CalorieNeeds)
	assert.Equal(t, 1668, advice.AdjustedCalories)
	assert.Equal(t, FitnessPlan(model.CategoryHealthy), advice.FitnessPlan)
	assert.Contains(t, advice.DietPlan[0], "1668")
	assert.Equal(t, Disclaimer, advice.Disclaimer)
}

func TestComputeAdvice_ObeseMaleGetsDeficit(t *testing.T) {
	m := model.HealthMetrics{
		Weight:        120,
		Height:        170,
		Age:           45,
		Gender:        model.GenderMale,
		ActivityLevel: model.ActivityLight,
	}

	advice, err := ComputeAdvice(m)
	require.NoError(t, err)

	// BMR = 88.362 + 1607.64 + 815.83 - 255.465 = 2256.367, x1.375 = 3102.50...
	assert.Equal(t, model.CategoryObese, advice.BMI.Category)
	assert.Equal(t, 3103, advice.CalorieNeeds)
	assert.Equal(t, 2603, advice.AdjustedCalories)
	assert.Equal(t, "Target approximately 2603 calories daily for sustainable weight loss", advice.DietPlan[0])
}

func TestComputeAdvice_InvalidMetrics(t *testing.T) {
	advice, err := ComputeAdvice(model.HealthMetrics{Weight: 0, Height: 170, Age: 30, Gender: model.GenderMale, ActivityLevel: model.ActivityModerate})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, model.AdviceResult{}, advice)

	advice, err = ComputeAdvice(model.HealthMetrics{Weight: 70, Height: 170, Age: 30, Gender: model.GenderMale, ActivityLevel: "couch"})
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
	assert.Equal(t, model.AdviceResult{}, advice)
}

func TestComputeAdvice_Idempotent(t *testing.T) {
	m := model.HealthMetrics{Weight: 82.3, Height: 181, Age: 37, Gender: model.GenderMale, ActivityLevel: model.ActivityActive}

	first, err := ComputeAdvice(m)
	require.NoError(t, err)
	second, err := ComputeAdvice(m)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// The formulas are applied as-is at the corners of the accepted ranges, even
// where they produce a negative energy estimate.
func TestComputeAdvice_NegativeEnergyAtRangeCorner(t *testing.T) {
	m := model.HealthMetrics{Weight: 10, Height: 50, Age: 120, Gender: model.GenderMale, ActivityLevel: model.ActivitySedentary}

	advice, err := ComputeAdvice(m)
	require.NoError(t, err)

	assert.InDelta(t, -218.958, advice.BMR, 1e-9)
	assert.Equal(t, -263, advice.CalorieNeeds)
	assert.Equal(t, model.CategoryObese, advice.BMI.Category)
	assert.Equal(t, -763, advice.AdjustedCalories)
	assert.Equal(t, "Target approximately -763 calories daily for sustainable weight loss", advice.DietPlan[0])
}
