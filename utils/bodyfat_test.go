package utils

import (
	"testing"

	"healthapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestCalculateBodyFat(t *testing.T) {
	t.Run("male", func(t *testing.T) {
		pct, err := CalculateBodyFat(models.GenderMale, 180, 38, 85, nil)
		require.NoError(t, err)
		assert.InDelta(t, 16.11, pct, 0.05)
	})

	t.Run("female", func(t *testing.T) {
		pct, err := CalculateBodyFat(models.GenderFemale, 165, 33, 70, ptr(95))
		require.NoError(t, err)
		assert.InDelta(t, 24.33, pct, 0.05)
	})
}

func TestCalculateBodyFat_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		gender models.Gender
		height float64
		neck   float64
		waist  float64
		hip    *float64
	}{
		{name: "female without hip", gender: models.GenderFemale, height: 165, neck: 33, waist: 70, hip: nil},
		{name: "female with zero hip", gender: models.GenderFemale, height: 165, neck: 33, waist: 70, hip: ptr(0)},
		{name: "male waist not above neck", gender: models.GenderMale, height: 180, neck: 40, waist: 40, hip: nil},
		{name: "zero height", gender: models.GenderMale, height: 0, neck: 38, waist: 85, hip: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateBodyFat(tt.gender, tt.height, tt.neck, tt.waist, tt.hip)
			assert.Error(t, err)
		})
	}
}

func TestBodyFatCategory(t *testing.T) {
	tests := []struct {
		gender models.Gender
		pct    float64
		want   string
	}{
		{gender: models.GenderMale, pct: 5, want: "Essential fat"},
		{gender: models.GenderMale, pct: 10, want: "Athletic"},
		{gender: models.GenderMale, pct: 16, want: "Fitness"},
		{gender: models.GenderMale, pct: 20, want: "Average"},
		{gender: models.GenderMale, pct: 30, want: "Obese"},
		{gender: models.GenderFemale, pct: 14, want: "Essential fat"},
		{gender: models.GenderFemale, pct: 20, want: "Athletic"},
		{gender: models.GenderFemale, pct: 27, want: "Fitness"},
		{gender: models.GenderFemale, pct: 35, want: "Average"},
		{gender: models.GenderFemale, pct: 45, want: "Obese"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BodyFatCategory(tt.gender, tt.pct), "%s %.0f%%", tt.gender, tt.pct)
	}
}
