package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"healthapi/services"

	"github.com/gin-gonic/gin"
)

// FoodNutrition handles
// GET /food-nutrition?ingredients=apple&ingredients=banana&amounts=100&amounts=50
// The two query lists are parallel: one amount in grams per ingredient.
func FoodNutrition(svc *services.NutritionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ingredients := c.QueryArray("ingredients")
		rawAmounts := c.QueryArray("amounts")

		amounts := make([]float64, 0, len(rawAmounts))
		for _, raw := range rawAmounts {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid amount %q", raw)})
				return
			}
			amounts = append(amounts, v)
		}

		report, err := svc.Aggregate(c.Request.Context(), ingredients, amounts)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, report)
	}
}
