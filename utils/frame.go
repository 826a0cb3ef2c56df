package utils

import (
	"errors"

	"healthapi/models"
)

// CalculateFrameSize classifies body frame from the height/wrist ratio.
// Thresholds differ by gender.
func CalculateFrameSize(gender models.Gender, heightCm, wristCm float64) (models.FrameSize, error) {
	if heightCm <= 0 || wristCm <= 0 {
		return "", errors.New("height and wrist circumference must be positive")
	}

	r := heightCm / wristCm
	if gender == models.GenderMale {
		switch {
		case r > 10.4:
			return models.FrameSmall, nil
		case r < 9.6:
			return models.FrameLarge, nil
		default:
			return models.FrameMedium, nil
		}
	}
	switch {
	case r > 11.0:
		return models.FrameSmall, nil
	case r < 10.1:
		return models.FrameLarge, nil
	default:
		return models.FrameMedium, nil
	}
}
