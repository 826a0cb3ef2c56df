package controllers

import (
	"math"
	"net/http"

	"healthapi/models"
	"healthapi/utils"

	"github.com/gin-gonic/gin"
)

// POST /bmi
func CalculateBMI(c *gin.Context) {
	var req models.BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmi, err := utils.CalculateBMI(req.HeightCm, req.WeightKg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.BMIResponse{
		BMI:      math.Round(bmi*100) / 100,
		Category: utils.BMICategory(bmi),
	})
}

// POST /body-frame
func CalculateBodyFrame(c *gin.Context) {
	var req models.BodyFrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	size, err := utils.CalculateFrameSize(req.Gender, req.HeightCm, req.WristCircumferenceCm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.BodyFrameResponse{FrameSize: size})
}

// POST /body-fat
func CalculateBodyFat(c *gin.Context) {
	var req models.BodyFatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pct, err := utils.CalculateBodyFat(req.Gender, req.HeightCm, req.NeckCircumferenceCm, req.WaistCircumferenceCm, req.HipCircumferenceCm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.BodyFatResponse{
		BodyFatPercentage: math.Round(pct*100) / 100,
		Category:          utils.BodyFatCategory(req.Gender, pct),
	})
}

// POST /macros
func CalculateMacros(c *gin.Context) {
	var req models.MacroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, utils.CalculateMacros(req))
}
