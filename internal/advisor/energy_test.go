package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

func TestComputeBMR(t *testing.T) {
	tests := []struct {
		name    string
		metrics model.HealthMetrics
		want    float64
	}{
		{
			name:    "male",
			metrics: model.HealthMetrics{Weight: 70, Height: 175, Age: 30, Gender: model.GenderMale},
			want:    88.362 + 13.397*70 + 4.799*175 - 5.677*30,
		},
		{
			name:    "female",
			metrics: model.HealthMetrics{Weight: 60, Height: 160, Age: 25, Gender: model.GenderFemale},
			want:    447.593 + 9.247*60 + 3.098*160 - 4.330*25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmr, err := ComputeBMR(tt.metrics)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, bmr, 1e-9)
		})
	}
}

func TestComputeBMR_LiteralValues(t *testing.T) {
	male, err := ComputeBMR(model.HealthMetrics{Weight: 70, Height: 175, Age: 30, Gender: model.GenderMale})
	require.NoError(t, err)
	assert.InDelta(t, 1695.667, male, 1e-9)

	female, err := ComputeBMR(model.HealthMetrics{Weight: 60, Height: 160, Age: 25, Gender: model.GenderFemale})
	require.NoError(t, err)
	assert.InDelta(t, 1389.843, female, 1e-9)
}

func TestComputeBMR_UnknownGender(t *testing.T) {
	_, err := ComputeBMR(model.HealthMetrics{Weight: 70, Height: 175, Age: 30, Gender: "other"})
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
}

func TestComputeTDEE(t *testing.T) {
	tests := []struct {
		name  string
		bmr   float64
		level model.ActivityLevel
		want  int
	}{
		{"sedentary", 1389.843, model.ActivitySedentary, 1668},
		{"light", 1500, model.ActivityLight, 2063},
		{"moderate", 1728.322, model.ActivityModerate, 2679},
		{"active", 2000, model.ActivityActive, 3450},
		{"very active", 1800, model.ActivityVeryActive, 3420},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tdee, err := ComputeTDEE(tt.bmr, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tdee)
		})
	}
}

func TestComputeTDEE_UnknownActivityLevel(t *testing.T) {
	for _, level := range []model.ActivityLevel{"", "very_active", "extreme", "Moderate"} {
		_, err := ComputeTDEE(1500, level)
		assert.ErrorIs(t, err, ErrUnknownEnumValue, "level %q", level)
	}
}

func TestActivityMultiplier(t *testing.T) {
	want := map[model.ActivityLevel]float64{
		model.ActivitySedentary:  1.2,
		model.ActivityLight:      1.375,
		model.ActivityModerate:   1.55,
		model.ActivityActive:     1.725,
		model.ActivityVeryActive: 1.9,
	}
	for level, mult := range want {
		got, err := ActivityMultiplier(level)
		require.NoError(t, err)
		assert.Equal(t, mult, got)
	}
}

func TestComputeEnergy(t *testing.T) {
	energy, err := ComputeEnergy(model.HealthMetrics{
		Weight:        60,
		Height:        160,
		Age:           25,
		Gender:        model.GenderFemale,
		ActivityLevel: model.ActivitySedentary,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1389.843, energy.BMR, 1e-9)
	assert.Equal(t, 1668, energy.CalorieNeeds)
}
