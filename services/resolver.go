package services

import (
	"context"

	"healthapi/models"
)

// FoodResolver maps a free-text ingredient query to the best-matching food
// record. Implementations return ErrFoodNotFound when the database has no
// candidate and *UpstreamError when the database itself cannot be reached.
type FoodResolver interface {
	Resolve(ctx context.Context, query string) (models.NutrientRecord, error)
}

// CandidateSelector picks which search hit to use for a query. The selector
// is advisory: an error or out-of-range index falls back to the first hit.
type CandidateSelector interface {
	Select(ctx context.Context, query string, candidates []models.FoodCandidate) (int, error)
}

// FirstHitSelector trusts the database's own ranking.
type FirstHitSelector struct{}

func (FirstHitSelector) Select(context.Context, string, []models.FoodCandidate) (int, error) {
	return 0, nil
}
