package advisor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

func validRaw() model.RawMetrics {
	return model.RawMetrics{
		Weight:        "70",
		Height:        "175",
		Age:           "30",
		Gender:        "male",
		ActivityLevel: "moderate",
	}
}

func TestValidate_Success(t *testing.T) {
	raw := model.RawMetrics{
		Weight:        " 62.5 ",
		Height:        "168",
		Age:           "41",
		Gender:        "Female",
		ActivityLevel: "very-active",
	}

	m, err := Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, model.HealthMetrics{
		Weight:        62.5,
		Height:        168,
		Age:           41,
		Gender:        model.GenderFemale,
		ActivityLevel: model.ActivityVeryActive,
	}, m)
}

func TestValidate_RangeBoundsAreInclusive(t *testing.T) {
	raw := model.RawMetrics{Weight: "10", Height: "250", Age: "120", Gender: "male", ActivityLevel: "sedentary"}
	_, err := Validate(raw)
	assert.NoError(t, err)

	raw = model.RawMetrics{Weight: "300", Height: "50", Age: "1", Gender: "female", ActivityLevel: "light"}
	_, err = Validate(raw)
	assert.NoError(t, err)
}

func TestValidate_WholeNumberAgeSpellings(t *testing.T) {
	for _, age := range []string{"25", "25.0", "2.5e1", " 25.000 "} {
		raw := validRaw()
		raw.Age = age

		m, err := Validate(raw)
		require.NoError(t, err, age)
		assert.Equal(t, 25, m.Age, age)
	}
}

func TestValidate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.RawMetrics)
		field  string
	}{
		{"missing weight", func(r *model.RawMetrics) { r.Weight = "" }, "weight"},
		{"non-numeric weight", func(r *model.RawMetrics) { r.Weight = "heavy" }, "weight"},
		{"NaN weight", func(r *model.RawMetrics) { r.Weight = "NaN" }, "weight"},
		{"zero weight", func(r *model.RawMetrics) { r.Weight = "0" }, "weight"},
		{"weight above range", func(r *model.RawMetrics) { r.Weight = "300.1" }, "weight"},
		{"negative height", func(r *model.RawMetrics) { r.Height = "-170" }, "height"},
		{"height below range", func(r *model.RawMetrics) { r.Height = "49" }, "height"},
		{"infinite height", func(r *model.RawMetrics) { r.Height = "Inf" }, "height"},
		{"zero age", func(r *model.RawMetrics) { r.Age = "0" }, "age"},
		{"fractional age", func(r *model.RawMetrics) { r.Age = "25.5" }, "age"},
		{"huge age", func(r *model.RawMetrics) { r.Age = "1e300" }, "age"},
		{"infinite age", func(r *model.RawMetrics) { r.Age = "Inf" }, "age"},
		{"age above range", func(r *model.RawMetrics) { r.Age = "121" }, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			m, err := Validate(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.NotErrorIs(t, err, ErrUnknownEnumValue)
			assert.Equal(t, model.HealthMetrics{}, m)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestValidate_UnknownEnumValue(t *testing.T) {
	raw := validRaw()
	raw.Gender = "other"
	_, err := Validate(raw)
	assert.ErrorIs(t, err, ErrUnknownEnumValue)

	raw = validRaw()
	raw.ActivityLevel = "very_active"
	_, err = Validate(raw)
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
}

func TestValidate_ReportsEveryField(t *testing.T) {
	_, err := Validate(model.RawMetrics{Weight: "abc", Height: "0", Age: "-1", Gender: "x", ActivityLevel: "y"})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
	for _, field := range []string{"weight", "height", "age", "gender", "activity_level"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidateMetrics(t *testing.T) {
	valid := model.HealthMetrics{Weight: 70, Height: 175, Age: 30, Gender: model.GenderMale, ActivityLevel: model.ActivityActive}
	assert.NoError(t, ValidateMetrics(valid))

	zero := valid
	zero.Weight = 0
	assert.ErrorIs(t, ValidateMetrics(zero), ErrInvalidInput)

	upper := valid
	upper.Gender = "MALE"
	assert.ErrorIs(t, ValidateMetrics(upper), ErrUnknownEnumValue)

	unset := valid
	unset.ActivityLevel = ""
	assert.ErrorIs(t, ValidateMetrics(unset), ErrUnknownEnumValue)
}
