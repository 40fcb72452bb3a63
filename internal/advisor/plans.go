package advisor

import (
	"fmt"

	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

const planLength = 5

// Calorie adjustments applied to TDEE before rendering the diet plan
const (
	SurplusCalories = 300
	DeficitCalories = -500
)

type fitnessTable [planLength]string

// dietTable holds a format string for the calorie target line followed by fixed advice.
type dietTable struct {
	target string
	rest   [planLength - 1]string
}

var (
	underweightFitness = fitnessTable{
		"Focus on strength training to build muscle mass",
		"Start with bodyweight exercises like push-ups, squats, and lunges",
		"Gradually incorporate resistance training 3-4 times per week",
		"Include some light cardio 2-3 times per week for heart health",
		"Ensure adequate rest between workouts (48 hours for muscle groups)",
	}
	healthyFitness = fitnessTable{
		"Maintain a balanced workout regimen with both cardio and strength training",
		"Aim for 150 minutes of moderate activity per week",
		"Include 2-3 days of strength training targeting major muscle groups",
		"Add flexibility and mobility work like yoga or stretching sessions",
		"Try interval training for efficient workouts",
	}
	overweightFitness = fitnessTable{
		"Begin with low-impact cardio like walking, swimming, or cycling",
		"Gradually build up to 30-45 minutes of moderate cardio 5 times weekly",
		"Incorporate strength training 2-3 times per week for metabolic boost",
		"Consider circuit training to maximize calorie burn",
		"Add daily activity like taking stairs or short walks throughout the day",
	}
	obeseFitness = fitnessTable{
		"Start with gentle movement like walking or water exercises",
		"Focus on consistency with 20-30 minute sessions, gradually increasing duration",
		"Incorporate strength exercises with bodyweight or light resistance",
		"Consider working with a fitness professional for proper form and guidance",
		"Aim for increased daily activity through small, sustainable changes",
	}
)

var (
	underweightDiet = dietTable{
		target: "Consume approximately %d calories daily for healthy weight gain",
		rest: [planLength - 1]string{
			"Focus on nutrient-dense foods with healthy fats like avocados, nuts, and olive oil",
			"Include protein with each meal (eggs, lean meat, dairy, legumes)",
			"Add healthy carbohydrates like whole grains, fruits, and starchy vegetables",
			"Consider small, frequent meals if you struggle with large portions",
		},
	}
	healthyDiet = dietTable{
		target: "Maintain your balanced diet with approximately %d calories daily",
		rest: [planLength - 1]string{
			"Focus on whole foods with a colorful variety of fruits and vegetables",
			"Include lean proteins, whole grains, and healthy fats in balanced proportions",
			"Stay hydrated with at least 8 glasses of water daily",
			"Practice mindful eating and portion control",
		},
	}
	overweightDiet = dietTable{
		target: "Aim for approximately %d calories daily for gradual weight loss",
		rest: [planLength - 1]string{
			"Emphasize vegetables, fruits, lean proteins, and whole grains",
			"Limit processed foods, added sugars, and refined carbohydrates",
			"Practice portion control using smaller plates and mindful eating techniques",
			"Stay well hydrated and consider drinking water before meals",
		},
	}
	obeseDiet = dietTable{
		target: "Target approximately %d calories daily for sustainable weight loss",
		rest: [planLength - 1]string{
			"Focus on high-volume, low-calorie foods like vegetables and clear soups",
			"Choose lean proteins and high-fiber foods to increase satiety",
			"Consider keeping a food journal to increase awareness of eating habits",
			"Work on establishing consistent meal times and eliminating mindless snacking",
		},
	}
)

// Unrecognized categories fall back to the Healthy tables.
func fitnessFor(c model.Category) *fitnessTable {
	switch c {
	case model.CategoryUnderweight:
		return &underweightFitness
	case model.CategoryOverweight:
		return &overweightFitness
	case model.CategoryObese:
		return &obeseFitness
	default:
		return &healthyFitness
	}
}

func dietFor(c model.Category) *dietTable {
	switch c {
	case model.CategoryUnderweight:
		return &underweightDiet
	case model.CategoryOverweight:
		return &overweightDiet
	case model.CategoryObese:
		return &obeseDiet
	default:
		return &healthyDiet
	}
}

// CalorieAdjustment returns the surplus or deficit applied for a category.
func CalorieAdjustment(c model.Category) int {
	switch c {
	case model.CategoryUnderweight:
		return SurplusCalories
	case model.CategoryOverweight, model.CategoryObese:
		return DeficitCalories
	default:
		return 0
	}
}

// AdjustedCalories returns the daily calorie target quoted by the diet plan.
func AdjustedCalories(c model.Category, tdee int) int {
	return tdee + CalorieAdjustment(c)
}

// FitnessPlan returns a fresh copy of the fitness recommendations for a category.
func FitnessPlan(c model.Category) model.Plan {
	t := fitnessFor(c)
	plan := make(model.Plan, planLength)
	copy(plan, t[:])
	return plan
}

// DietPlan returns the diet recommendations for a category, with the first
// entry quoting the adjusted calorie target.
func DietPlan(c model.Category, tdee int) model.Plan {
	t := dietFor(c)
	plan := make(model.Plan, 0, planLength)
	plan = append(plan, fmt.Sprintf(t.target, AdjustedCalories(c, tdee)))
	plan = append(plan, t.rest[:]...)
	return plan
}
