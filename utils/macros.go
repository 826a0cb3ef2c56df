package utils

import "healthapi/models"

// CalculateMacros derives daily calorie and macro targets: Mifflin-St Jeor
// BMR, an activity multiplier, a goal adjustment, then protein from lean
// mass (1.8 g/kg, or 1.6 g/kg total weight when body fat is unknown), fat at
// 25% of calories and carbs from the remainder.
func CalculateMacros(req models.MacroRequest) models.MacroResponse {
	var bmr float64
	if req.Gender == models.GenderMale {
		bmr = 10*req.WeightKg + 6.25*req.HeightCm - 5*float64(req.Age) + 5
	} else {
		bmr = 10*req.WeightKg + 6.25*req.HeightCm - 5*float64(req.Age) - 161
	}

	var mult float64
	switch req.ActivityLevel {
	case models.ActivitySedentary:
		mult = 1.2
	case models.ActivityLight:
		mult = 1.375
	case models.ActivityModerate:
		mult = 1.55
	case models.ActivityActive:
		mult = 1.725
	case models.ActivityVeryActive:
		mult = 1.9
	default:
		mult = 1.2
	}
	tdee := bmr * mult

	var calories int
	switch req.Goal {
	case models.GoalLose:
		calories = int(tdee * 0.8) // 20% deficit
	case models.GoalGain:
		calories = int(tdee * 1.1) // 10% surplus
	default:
		calories = int(tdee)
	}

	var proteinG int
	if req.BodyFatPercentage != nil {
		leanMass := req.WeightKg * (1 - *req.BodyFatPercentage/100)
		proteinG = int(leanMass * 1.8)
	} else {
		proteinG = int(req.WeightKg * 1.6)
	}

	fatG := int(float64(calories) * 0.25 / 9)
	carbsG := (calories - proteinG*4 - fatG*9) / 4

	return models.MacroResponse{
		Calories: calories,
		ProteinG: proteinG,
		CarbsG:   carbsG,
		FatG:     fatG,
	}
}
