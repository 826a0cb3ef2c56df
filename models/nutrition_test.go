package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNutrients_Scale(t *testing.T) {
	n := Nutrients{Calories: 52, ProteinG: 0.3, CarbsG: 13.8, FatG: 0.2, FiberG: 2.4, SugarG: 10.4}

	half := n.Scale(0.5)
	assert.Equal(t, 26.0, half.Calories)
	assert.Equal(t, 6.9, half.CarbsG)

	assert.Equal(t, Nutrients{}, n.Scale(0))
}

func TestNutrients_Add(t *testing.T) {
	a := Nutrients{Calories: 52, CarbsG: 13.8}
	b := Nutrients{Calories: 89, CarbsG: 22.8, ProteinG: 1.1}

	sum := a.Add(b)
	assert.Equal(t, 141.0, sum.Calories)
	assert.InDelta(t, 36.6, sum.CarbsG, 1e-9)
	assert.Equal(t, 1.1, sum.ProteinG)
}

func TestNutrients_Round(t *testing.T) {
	n := Nutrients{Calories: 51.96, ProteinG: 0.25, CarbsG: 13.84, SugarG: 0.05}

	got := n.Round(1)
	assert.Equal(t, 52.0, got.Calories)
	assert.Equal(t, 0.3, got.ProteinG, "halves round away from zero")
	assert.Equal(t, 13.8, got.CarbsG)
	assert.Equal(t, 0.1, got.SugarG)
}
