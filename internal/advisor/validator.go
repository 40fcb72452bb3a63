package advisor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

// Range is an inclusive numeric bound
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var (
	WeightRange = Range{Min: 10, Max: 300} // kg
	HeightRange = Range{Min: 50, Max: 250} // cm
	AgeRange    = Range{Min: 1, Max: 120}  // years
)

// Validate parses raw input into HealthMetrics. Every rejected field is
// reported; the returned error matches ErrInvalidInput and/or ErrUnknownEnumValue
// through errors.Is.
func Validate(raw model.RawMetrics) (model.HealthMetrics, error) {
	var errs []error

	weight, err := parseMeasure("weight", raw.Weight, WeightRange)
	if err != nil {
		errs = append(errs, err)
	}
	height, err := parseMeasure("height", raw.Height, HeightRange)
	if err != nil {
		errs = append(errs, err)
	}
	age, err := parseAge(raw.Age)
	if err != nil {
		errs = append(errs, err)
	}
	gender, err := ParseGender(raw.Gender)
	if err != nil {
		errs = append(errs, err)
	}
	level, err := ParseActivityLevel(raw.ActivityLevel)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return model.HealthMetrics{}, errors.Join(errs...)
	}

	return model.HealthMetrics{
		Weight:        weight,
		Height:        height,
		Age:           age,
		Gender:        gender,
		ActivityLevel: level,
	}, nil
}

// ValidateMetrics checks an already typed record against the same rules as Validate.
func ValidateMetrics(m model.HealthMetrics) error {
	var errs []error

	if err := checkMeasure("weight", m.Weight, WeightRange); err != nil {
		errs = append(errs, err)
	}
	if err := checkMeasure("height", m.Height, HeightRange); err != nil {
		errs = append(errs, err)
	}
	if err := checkMeasure("age", float64(m.Age), AgeRange); err != nil {
		errs = append(errs, err)
	}
	if m.Gender != model.GenderMale && m.Gender != model.GenderFemale {
		errs = append(errs, unknownEnum("gender", string(m.Gender)))
	}
	if _, ok := activityMultipliers[m.ActivityLevel]; !ok {
		errs = append(errs, unknownEnum("activity_level", string(m.ActivityLevel)))
	}

	return errors.Join(errs...)
}

// ParseGender maps a user-supplied string onto the closed Gender set.
func ParseGender(s string) (model.Gender, error) {
	switch g := model.Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case model.GenderMale, model.GenderFemale:
		return g, nil
	default:
		return "", unknownEnum("gender", s)
	}
}

// ParseActivityLevel maps a user-supplied string onto the closed ActivityLevel set.
func ParseActivityLevel(s string) (model.ActivityLevel, error) {
	level := model.ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := activityMultipliers[level]; !ok {
		return "", unknownEnum("activity_level", s)
	}
	return level, nil
}

func parseMeasure(field, s string, r Range) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalidInput(field, s, "is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidInput(field, s, "must be a number")
	}
	return v, checkMeasure(field, v, r)
}

// parseAge accepts any numeric spelling of a whole number, so "25", "25.0"
// and "2.5e1" are all 25.
func parseAge(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalidInput("age", s, "is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, invalidInput("age", s, "must be a whole number")
	}
	if err := checkMeasure("age", v, AgeRange); err != nil {
		return 0, err
	}
	return int(v), nil
}

func checkMeasure(field string, v float64, r Range) error {
	value := strconv.FormatFloat(v, 'g', -1, 64)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return invalidInput(field, value, "must be a number")
	case v <= 0:
		return invalidInput(field, value, "must be positive")
	case !r.contains(v):
		return invalidInput(field, value, fmt.Sprintf("must be between %g and %g", r.Min, r.Max))
	}
	return nil
}
