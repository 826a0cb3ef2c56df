package routes

import (
	"healthapi/config"
	"healthapi/controllers"
	"healthapi/mcp"
	"healthapi/middlewares"
	"healthapi/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, nutrition *services.NutritionService, tools *mcp.HealthServer) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	api := r.Group("/")
	if cfg.JWTSecret != "" {
		api.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	}
	{
		api.POST("/bmi", controllers.CalculateBMI)
		api.POST("/body-frame", controllers.CalculateBodyFrame)
		api.POST("/body-fat", controllers.CalculateBodyFat)
		api.POST("/macros", controllers.CalculateMacros)
		api.GET("/food-nutrition", controllers.FoodNutrition(nutrition))
		api.POST("/mcp", gin.WrapF(tools.HandleHTTP))
	}

	return r
}
