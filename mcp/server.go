package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/ThinkInAIXYZ/go-mcp/server"
	"github.com/ThinkInAIXYZ/go-mcp/transport"

	"healthapi/services"
)

// HealthServer exposes the calculators and the nutrition aggregator as MCP
// tools over a simple HTTP tool-call endpoint, so LLM agents can use the API
// the same way HTTP clients do.
type HealthServer struct {
	server    *server.Server
	nutrition *services.NutritionService
	tools     map[string]toolHandler
}

type toolHandler func(r *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error)

func NewHealthServer(nutrition *services.NutritionService) (*HealthServer, error) {
	// Transport is handled by the surrounding HTTP router; the MCP server
	// only carries the implementation info. NewServer requires a non-nil
	// transport, so pass an inert mock transport that is never run.
	mcpServer, err := server.NewServer(
		transport.NewMockServerTransport(io.NopCloser(strings.NewReader("")), io.Discard),
		server.WithServerInfo(protocol.Implementation{
			Name:    "health-information-api",
			Version: "1.0.0",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP server: %w", err)
	}

	hs := &HealthServer{
		server:    mcpServer,
		nutrition: nutrition,
	}
	hs.tools = map[string]toolHandler{
		"calculate_bmi":            hs.handleCalculateBMI,
		"calculate_body_frame":     hs.handleCalculateBodyFrame,
		"calculate_body_fat":       hs.handleCalculateBodyFat,
		"calculate_macros":         hs.handleCalculateMacros,
		"calculate_food_nutrition": hs.handleFoodNutrition,
	}
	return hs, nil
}

// HandleHTTP serves one MCP tool call per POST request.
func (s *HealthServer) HandleHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	handler, ok := s.tools[request.Name]
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown tool: %s", request.Name), http.StatusNotFound)
		return
	}

	result, err := handler(r, &request)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *HealthServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
