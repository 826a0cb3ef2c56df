package main

import (
	"log"

	"healthapi/config"
	"healthapi/mcp"
	"healthapi/routes"
	"healthapi/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var selector services.CandidateSelector = services.FirstHitSelector{}
	if cfg.OpenAIAPIKey != "" {
		selector = services.NewOpenAISelector(cfg)
	}
	usda := services.NewUSDAService(cfg, selector)
	nutrition := services.NewNutritionService(usda, cfg.LookupWorkers)

	tools, err := mcp.NewHealthServer(nutrition)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	r := routes.SetupRouter(cfg, nutrition, tools)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
