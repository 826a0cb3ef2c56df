package utils

import (
	"errors"
	"math"

	"healthapi/models"
)

// CalculateBodyFat estimates body fat percentage with the U.S. Navy
// circumference method. All measurements are centimeters; hipCm is required
// for females and ignored for males.
func CalculateBodyFat(gender models.Gender, heightCm, neckCm, waistCm float64, hipCm *float64) (float64, error) {
	if heightCm <= 0 || neckCm <= 0 || waistCm <= 0 {
		return 0, errors.New("height, neck and waist must be positive")
	}

	if gender == models.GenderFemale {
		if hipCm == nil || *hipCm <= 0 {
			return 0, errors.New("hip circumference is required for females")
		}
		girth := waistCm + *hipCm - neckCm
		if girth <= 0 {
			return 0, errors.New("waist plus hip must exceed neck circumference")
		}
		return 495/(1.29579-0.35004*math.Log10(girth)+0.22100*math.Log10(heightCm)) - 450, nil
	}

	girth := waistCm - neckCm
	if girth <= 0 {
		return 0, errors.New("waist must exceed neck circumference")
	}
	return 495/(1.0324-0.19077*math.Log10(girth)+0.15456*math.Log10(heightCm)) - 450, nil
}

func BodyFatCategory(gender models.Gender, pct float64) string {
	if gender == models.GenderMale {
		switch {
		case pct < 6:
			return "Essential fat"
		case pct < 14:
			return "Athletic"
		case pct < 18:
			return "Fitness"
		case pct < 25:
			return "Average"
		default:
			return "Obese"
		}
	}
	switch {
	case pct < 16:
		return "Essential fat"
	case pct < 24:
		return "Athletic"
	case pct < 31:
		return "Fitness"
	case pct < 39:
		return "Average"
	default:
		return "Obese"
	}
}
