package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"healthapi/config"
	"healthapi/models"
)

const selectorPrompt = `You match a food query against a list of database descriptions.
Pick the single description that best represents the queried food, preferring
whole or primary ingredients over composite or processed foods.
Respond with only a JSON object: {"index": <int>} for a confident match, or
{"index": null} if none of the descriptions fits.`

// OpenAISelector asks a language model which search hit best matches the
// query. It exists because the database's lexical ranking often puts
// "apple, croissant" above "apple, raw" for the query "apple".
type OpenAISelector struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewOpenAISelector(cfg *config.Config) *OpenAISelector {
	return &OpenAISelector{
		apiKey:  cfg.OpenAIAPIKey,
		model:   cfg.OpenAIModel,
		baseURL: cfg.OpenAIBaseURL,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type selectorInput struct {
	Query         string `json:"query"`
	SearchResults []struct {
		Index       int    `json:"index"`
		Description string `json:"description"`
	} `json:"search_results"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Select returns the model's chosen candidate index. A null index from the
// model means no confident match, which maps to the first hit.
func (s *OpenAISelector) Select(ctx context.Context, query string, candidates []models.FoodCandidate) (int, error) {
	in := selectorInput{Query: query}
	for i, c := range candidates {
		in.SearchResults = append(in.SearchResults, struct {
			Index       int    `json:"index"`
			Description string `json:"description"`
		}{Index: i, Description: c.Description})
	}
	user, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("marshal selector input: %w", err)
	}

	cr := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: selectorPrompt},
			{Role: "user", Content: string(user)},
		},
		Temperature: 0.6,
		MaxTokens:   256,
	}
	cr.ResponseFormat.Type = "json_object"

	b, err := json.Marshal(cr)
	if err != nil {
		return 0, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return 0, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("model API error %d: %s", resp.StatusCode, string(body))
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("parse model response: %w", err)
	}
	if len(out.Choices) == 0 {
		return 0, fmt.Errorf("model returned no choices")
	}

	var choice struct {
		Index *int `json:"index"`
	}
	if err := json.Unmarshal([]byte(out.Choices[0].Message.Content), &choice); err != nil {
		return 0, fmt.Errorf("parse model choice: %w", err)
	}
	if choice.Index == nil {
		return 0, nil
	}
	return *choice.Index, nil
}
