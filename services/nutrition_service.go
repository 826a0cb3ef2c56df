package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"healthapi/models"
)

const defaultLookupWorkers = 4

// NutritionService resolves a batch of (ingredient, grams) pairs against the
// food database and sums them into a single report. Individual lookup
// failures degrade that ingredient to the report's unresolved list; they
// never abort the batch.
type NutritionService struct {
	resolver FoodResolver
	workers  int
	decimals int
}

// NewNutritionService wires the aggregator to a resolver. workers bounds the
// number of in-flight lookups; <=0 picks the default.
func NewNutritionService(resolver FoodResolver, workers int) *NutritionService {
	if workers <= 0 {
		workers = defaultLookupWorkers
	}
	return &NutritionService{
		resolver: resolver,
		workers:  workers,
		decimals: 1, // nutrition-label display precision
	}
}

// pairRequests validates the parallel lists before anything touches the
// network.
func pairRequests(ingredients []string, amounts []float64) ([]models.IngredientRequest, error) {
	if len(ingredients) != len(amounts) {
		return nil, &ValidationError{
			Msg: fmt.Sprintf("got %d ingredients but %d amounts", len(ingredients), len(amounts)),
		}
	}
	reqs := make([]models.IngredientRequest, len(ingredients))
	for i := range ingredients {
		if amounts[i] < 0 {
			return nil, &ValidationError{
				Msg: fmt.Sprintf("amount for %q must not be negative", ingredients[i]),
			}
		}
		reqs[i] = models.IngredientRequest{Query: ingredients[i], AmountG: amounts[i]}
	}
	return reqs, nil
}

// Aggregate resolves every ingredient, scales each per-100g profile to its
// requested amount and sums the results. Lookups run concurrently up to the
// worker limit; the report keeps the original request order. Totals are
// summed at full precision and rounded once at the end, so they don't
// accumulate per-ingredient rounding error.
func (s *NutritionService) Aggregate(ctx context.Context, ingredients []string, amounts []float64) (*models.NutritionReport, error) {
	reqs, err := pairRequests(ingredients, amounts)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.FoodEntry, len(reqs))
	scaled := make([]models.Nutrients, len(reqs))
	failed := make([]*models.UnresolvedIngredient, len(reqs))

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(i int, req models.IngredientRequest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			record, err := s.resolver.Resolve(ctx, req.Query)
			if err != nil {
				slog.Info("ingredient lookup failed", "query", req.Query, "error", err)
				failed[i] = &models.UnresolvedIngredient{Query: req.Query, Reason: err.Error()}
				return
			}

			full := record.Per100g.Scale(req.AmountG / 100)
			scaled[i] = full
			entries[i] = &models.FoodEntry{
				Name:      record.Name,
				AmountG:   req.AmountG,
				Nutrients: full.Round(s.decimals),
			}
		}(i, reqs[i])
	}
	wg.Wait()

	report := &models.NutritionReport{
		Foods:      make([]models.FoodEntry, 0, len(reqs)),
		Unresolved: make([]models.UnresolvedIngredient, 0),
	}
	var totals models.Nutrients
	for i := range reqs {
		if entries[i] != nil {
			totals = totals.Add(scaled[i])
			report.Foods = append(report.Foods, *entries[i])
			continue
		}
		report.Unresolved = append(report.Unresolved, *failed[i])
	}
	report.Totals = totals.Round(s.decimals)
	return report, nil
}
