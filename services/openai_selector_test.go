package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthapi/config"
	"healthapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectorConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenAIAPIKey:  "sk-test",
		OpenAIModel:   "gpt-4.1-nano",
		OpenAIBaseURL: baseURL,
		HTTPTimeout:   2 * time.Second,
	}
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func appleCandidates() []models.FoodCandidate {
	return []models.FoodCandidate{
		{FdcID: 111, Description: "Apple, croissant"},
		{FdcID: 222, Description: "Apple, raw"},
	}
}

func TestOpenAISelector_PicksIndex(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, chatReply(`{"index": 1}`))
	}))
	t.Cleanup(srv.Close)

	sel := NewOpenAISelector(selectorConfig(srv.URL))
	idx, err := sel.Select(context.Background(), "apple", appleCandidates())
	require.NoError(t, err)

	assert.Equal(t, 1, idx)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4.1-nano", gotReq.Model)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
	require.Len(t, gotReq.Messages, 2)
	assert.Contains(t, gotReq.Messages[1].Content, "Apple, raw")
}

func TestOpenAISelector_NullIndexMeansFirstHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply(`{"index": null}`))
	}))
	t.Cleanup(srv.Close)

	sel := NewOpenAISelector(selectorConfig(srv.URL))
	idx, err := sel.Select(context.Background(), "apple", appleCandidates())
	require.NoError(t, err)
	assert.Zero(t, idx)
}

func TestOpenAISelector_ErrorPaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices": []}`)
			},
		},
		{
			name: "unparseable content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, chatReply("best of luck"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			t.Cleanup(srv.Close)

			sel := NewOpenAISelector(selectorConfig(srv.URL))
			_, err := sel.Select(context.Background(), "apple", appleCandidates())
			assert.Error(t, err)
		})
	}
}
