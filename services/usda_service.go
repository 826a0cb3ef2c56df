package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"healthapi/config"
	"healthapi/models"
)

// FoodData Central nutrient numbers for the values we track.
const (
	nutrientEnergyKcal    = 2047
	nutrientEnergyLegacy  = 1008 // used when 2047 is absent or zero
	nutrientProtein       = 1003
	nutrientTotalFat      = 1004
	nutrientCarbohydrates = 1005
	nutrientFiber         = 1079
	nutrientTotalSugars   = 2000
)

// USDAService talks to the USDA FoodData Central API: one search call to rank
// candidates, then one detail call for the chosen food's nutrient profile.
type USDAService struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	selector CandidateSelector
}

// NewUSDAService initializes the USDAService with credentials and HTTP client.
// A nil selector means the first search hit wins.
func NewUSDAService(cfg *config.Config, selector CandidateSelector) *USDAService {
	if selector == nil {
		selector = FirstHitSelector{}
	}
	return &USDAService{
		apiKey:   cfg.USDAAPIKey,
		baseURL:  cfg.USDABaseURL,
		client:   &http.Client{Timeout: cfg.HTTPTimeout},
		selector: selector,
	}
}

type foodSearchResponse struct {
	Foods []struct {
		FdcID       int    `json:"fdcId"`
		Description string `json:"description"`
	} `json:"foods"`
}

// SearchFoods queries the FoodData Central search endpoint and returns the
// ranked candidates, best match first.
func (s *USDAService) SearchFoods(ctx context.Context, query string) ([]models.FoodCandidate, error) {
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("query", query)
	params.Set("dataType", "Foundation,SR Legacy")
	params.Set("pageSize", "25")

	body, err := s.get(ctx, "search", s.baseURL+"/foods/search?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var sr foodSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, &UpstreamError{Op: "search", Err: fmt.Errorf("parse search JSON: %w", err)}
	}

	results := make([]models.FoodCandidate, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		results = append(results, models.FoodCandidate{
			FdcID:       f.FdcID,
			Description: f.Description,
		})
	}
	return results, nil
}

type foodDetailResponse struct {
	Description     string  `json:"description"`
	ServingSize     float64 `json:"servingSize"`
	ServingSizeUnit string  `json:"servingSizeUnit"`
	FoodNutrients   []struct {
		Nutrient struct {
			ID int `json:"id"`
		} `json:"nutrient"`
		Amount float64 `json:"amount"`
	} `json:"foodNutrients"`
}

// FetchFood retrieves a food's full nutrient profile and flattens it to the
// tracked per-100g nutrient set. Nutrients missing from the payload stay zero.
func (s *USDAService) FetchFood(ctx context.Context, fdcID int) (models.NutrientRecord, error) {
	params := url.Values{}
	params.Set("api_key", s.apiKey)

	body, err := s.get(ctx, "detail", fmt.Sprintf("%s/food/%d?%s", s.baseURL, fdcID, params.Encode()))
	if err != nil {
		return models.NutrientRecord{}, err
	}

	var fd foodDetailResponse
	if err := json.Unmarshal(body, &fd); err != nil {
		return models.NutrientRecord{}, &UpstreamError{Op: "detail", Err: fmt.Errorf("parse detail JSON: %w", err)}
	}

	vals := make(map[int]float64, len(fd.FoodNutrients))
	for _, fn := range fd.FoodNutrients {
		vals[fn.Nutrient.ID] = fn.Amount
	}

	n := models.Nutrients{
		Calories: vals[nutrientEnergyKcal],
		ProteinG: vals[nutrientProtein],
		CarbsG:   vals[nutrientCarbohydrates],
		FatG:     vals[nutrientTotalFat],
		FiberG:   vals[nutrientFiber],
		SugarG:   vals[nutrientTotalSugars],
	}
	if n.Calories == 0 {
		n.Calories = vals[nutrientEnergyLegacy]
	}

	// Foundation/SR Legacy values come per serving; rescale to a 100g basis.
	// Non-gram serving units are already reported per 100g.
	size := fd.ServingSize
	if size <= 0 || !strings.EqualFold(fd.ServingSizeUnit, "g") {
		size = 100
	}
	if size != 100 {
		n = n.Scale(100 / size)
	}

	return models.NutrientRecord{Name: fd.Description, Per100g: n}, nil
}

// Resolve maps a query to its best candidate's nutrient record. Candidate
// choice is delegated to the selector; selector failures fall back to the
// database's own ranking.
func (s *USDAService) Resolve(ctx context.Context, query string) (models.NutrientRecord, error) {
	candidates, err := s.SearchFoods(ctx, query)
	if err != nil {
		return models.NutrientRecord{}, err
	}
	if len(candidates) == 0 {
		return models.NutrientRecord{}, ErrFoodNotFound
	}

	idx, err := s.selector.Select(ctx, query, candidates)
	if err != nil || idx < 0 || idx >= len(candidates) {
		if err != nil {
			slog.Warn("candidate selector failed, using first hit", "query", query, "error", err)
		}
		idx = 0
	}

	return s.FetchFood(ctx, candidates[idx].FdcID)
}

func (s *USDAService) get(ctx context.Context, op, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("fooddata central error %d: %s", resp.StatusCode, string(body))}
	}
	return body, nil
}
