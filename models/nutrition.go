package models

import "math"

// Nutrients is the tracked nutrient set for a food. Values are grams except
// Calories, which is kcal.
type Nutrients struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	SugarG   float64 `json:"sugar_g"`
}

// Scale multiplies every nutrient by factor.
func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * factor,
		ProteinG: n.ProteinG * factor,
		CarbsG:   n.CarbsG * factor,
		FatG:     n.FatG * factor,
		FiberG:   n.FiberG * factor,
		SugarG:   n.SugarG * factor,
	}
}

// Add returns the element-wise sum of two nutrient sets.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		ProteinG: n.ProteinG + o.ProteinG,
		CarbsG:   n.CarbsG + o.CarbsG,
		FatG:     n.FatG + o.FatG,
		FiberG:   n.FiberG + o.FiberG,
		SugarG:   n.SugarG + o.SugarG,
	}
}

// Round rounds every nutrient to the given number of decimals, half away
// from zero, the usual nutrition-label convention.
func (n Nutrients) Round(decimals int) Nutrients {
	return Nutrients{
		Calories: roundTo(n.Calories, decimals),
		ProteinG: roundTo(n.ProteinG, decimals),
		CarbsG:   roundTo(n.CarbsG, decimals),
		FatG:     roundTo(n.FatG, decimals),
		FiberG:   roundTo(n.FiberG, decimals),
		SugarG:   roundTo(n.SugarG, decimals),
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// NutrientRecord is a food's per-100g nutrient profile as resolved from the
// food database, with the database's display name. Nutrients the database
// does not report are zero, never absent.
type NutrientRecord struct {
	Name    string
	Per100g Nutrients
}

// FoodCandidate is one ranked hit from a food database search.
type FoodCandidate struct {
	FdcID       int
	Description string
}

// IngredientRequest pairs a free-text ingredient query with the amount of it
// being eaten, in grams.
type IngredientRequest struct {
	Query   string  `json:"query"`
	AmountG float64 `json:"amount_g"`
}

// FoodEntry is the per-ingredient breakdown in a report, scaled to the
// requested amount.
type FoodEntry struct {
	Name    string  `json:"name"`
	AmountG float64 `json:"amount_g"`
	Nutrients
}

// UnresolvedIngredient records a query that could not be resolved against the
// food database, with the reason it failed.
type UnresolvedIngredient struct {
	Query  string `json:"query"`
	Reason string `json:"reason"`
}

// NutritionReport is the summed result for a batch of ingredients. Foods
// keeps the original request order; unresolved ingredients are listed
// separately and contribute nothing to the totals.
type NutritionReport struct {
	Totals     Nutrients              `json:"totals"`
	Foods      []FoodEntry            `json:"foods"`
	Unresolved []UnresolvedIngredient `json:"unresolved"`
}
