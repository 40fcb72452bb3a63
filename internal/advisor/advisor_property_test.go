package advisor

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

func genGender() gopter.Gen {
	return gen.OneConstOf(model.GenderMale, model.GenderFemale)
}

func genActivityLevel() gopter.Gen {
	return gen.OneConstOf(
		model.ActivitySedentary,
		model.ActivityLight,
		model.ActivityModerate,
		model.ActivityActive,
		model.ActivityVeryActive,
	)
}

func TestProperty_BMIValueIsRoundedQuotient(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("bmi value equals weight / height_m^2 rounded to one decimal", prop.ForAll(
		func(weight, height float64) bool {
			result, err := ComputeBMI(weight, height)
			if err != nil {
				t.Logf("unexpected error for weight=%v height=%v: %v", weight, height, err)
				return false
			}
			heightM := height / 100
			want := math.Round(weight/(heightM*heightM)*10) / 10
			return result.Value == want
		},
		gen.Float64Range(WeightRange.Min, WeightRange.Max),
		gen.Float64Range(HeightRange.Min, HeightRange.Max),
	))

	properties.TestingRun(t)
}

func TestProperty_CategoryPartitionIsTotalAndDisjoint(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("every bmi maps to exactly one category", prop.ForAll(
		func(bmi float64) bool {
			matches := map[model.Category]bool{
				model.CategoryUnderweight: bmi < 18.5,
				model.CategoryHealthy:     bmi >= 18.5 && bmi < 25,
				model.CategoryOverweight:  bmi >= 25 && bmi < 30,
				model.CategoryObese:       bmi >= 30,
			}
			count := 0
			for _, ok := range matches {
				if ok {
					count++
				}
			}
			return count == 1 && matches[Classify(bmi)]
		},
		gen.Float64Range(0, 120),
	))

	properties.TestingRun(t)
}

func TestProperty_TDEEIsRoundedScaledBMR(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("tdee equals round(bmr * multiplier)", prop.ForAll(
		func(bmr float64, level model.ActivityLevel) bool {
			tdee, err := ComputeTDEE(bmr, level)
			if err != nil {
				return false
			}
			return tdee == int(math.Round(bmr*activityMultipliers[level]))
		},
		gen.Float64Range(500, 5000),
		genActivityLevel(),
	))

	properties.TestingRun(t)
}

func TestProperty_UnknownCategoryFallsBackToHealthy(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("categories outside the closed set get the healthy plans", prop.ForAll(
		func(raw uint8, tdee int) bool {
			c := model.Category(raw)
			if c >= model.CategoryUnderweight && c <= model.CategoryObese {
				return true
			}
			return reflect.DeepEqual(FitnessPlan(c), FitnessPlan(model.CategoryHealthy)) &&
				reflect.DeepEqual(DietPlan(c, tdee), DietPlan(model.CategoryHealthy, tdee))
		},
		gen.UInt8(),
		gen.IntRange(800, 6000),
	))

	properties.TestingRun(t)
}

func TestProperty_AdviceIsConsistentAndIdempotent(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("advice quotes the adjusted calories and is reproducible", prop.ForAll(
		func(weight, height float64, age int, gender model.Gender, level model.ActivityLevel) bool {
			m := model.HealthMetrics{Weight: weight, Height: height, Age: age, Gender: gender, ActivityLevel: level}

			first, err := ComputeAdvice(m)
			if err != nil {
				t.Logf("unexpected error for %+v: %v", m, err)
				return false
			}
			second, err := ComputeAdvice(m)
			if err != nil || !reflect.DeepEqual(first, second) {
				return false
			}

			adjusted := first.CalorieNeeds + CalorieAdjustment(first.BMI.Category)
			return first.AdjustedCalories == adjusted &&
				strings.Contains(first.DietPlan[0], strconv.Itoa(adjusted)) &&
				len(first.FitnessPlan) == 5 &&
				len(first.DietPlan) == 5 &&
				first.BMI.Category == Classify(weight/((height/100)*(height/100)))
		},
		gen.Float64Range(WeightRange.Min, WeightRange.Max),
		gen.Float64Range(HeightRange.Min, HeightRange.Max),
		gen.IntRange(int(AgeRange.Min), int(AgeRange.Max)),
		genGender(),
		genActivityLevel(),
	))

	properties.TestingRun(t)
}

func TestProperty_ValidatorRejectsNonPositiveNumbers(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("non-positive weight is always invalid input", prop.ForAll(
		func(weight float64) bool {
			raw := validRaw()
			raw.Weight = strconv.FormatFloat(weight, 'f', -1, 64)
			_, err := Validate(raw)
			return err != nil && strings.Contains(err.Error(), "weight")
		},
		gen.Float64Range(-1000, 0),
	))

	properties.TestingRun(t)
}
