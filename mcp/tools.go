package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"healthapi/models"
	"healthapi/utils"
)

type bmiParams struct {
	WeightKg float64 `json:"weight_kg" description:"Weight in kilograms"`
	HeightCm float64 `json:"height_cm" description:"Height in centimeters"`
}

type bodyFrameParams struct {
	WristCircumferenceCm float64 `json:"wrist_circumference_cm" description:"Wrist circumference in centimeters"`
	HeightCm             float64 `json:"height_cm" description:"Height in centimeters"`
	Gender               string  `json:"gender" description:"male or female"`
}

type bodyFatParams struct {
	Gender               string   `json:"gender" description:"male or female"`
	HeightCm             float64  `json:"height_cm" description:"Height in centimeters"`
	NeckCircumferenceCm  float64  `json:"neck_circumference_cm" description:"Neck circumference in centimeters"`
	WaistCircumferenceCm float64  `json:"waist_circumference_cm" description:"Waist circumference in centimeters"`
	HipCircumferenceCm   *float64 `json:"hip_circumference_cm,omitempty" description:"Hip circumference in centimeters (required for females)"`
}

type macroParams struct {
	Gender            string   `json:"gender" description:"male or female"`
	Age               int      `json:"age" description:"Age in years"`
	WeightKg          float64  `json:"weight_kg" description:"Weight in kilograms"`
	HeightCm          float64  `json:"height_cm" description:"Height in centimeters"`
	ActivityLevel     string   `json:"activity_level" description:"sedentary, light, moderate, active or very_active"`
	Goal              string   `json:"goal" description:"maintain, lose or gain"`
	BodyFatPercentage *float64 `json:"body_fat_percentage,omitempty" description:"Body fat percentage if known"`
}

type foodNutritionParams struct {
	Ingredients []string  `json:"ingredients" description:"Food ingredients, e.g. 'apple', 'chicken breast'"`
	Amounts     []float64 `json:"amounts" description:"Amounts in grams, one per ingredient"`
}

// extractParams re-marshals the request arguments into a typed params struct.
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal parameters: %w", err)
	}
	return nil
}

func (s *HealthServer) handleCalculateBMI(_ *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params bmiParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	bmi, err := utils.CalculateBMI(params.HeightCm, params.WeightKg)
	if err != nil {
		return nil, err
	}

	return s.createJSONResponse(models.BMIResponse{
		BMI:      math.Round(bmi*100) / 100,
		Category: utils.BMICategory(bmi),
	})
}

func (s *HealthServer) handleCalculateBodyFrame(_ *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params bodyFrameParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	size, err := utils.CalculateFrameSize(models.Gender(params.Gender), params.HeightCm, params.WristCircumferenceCm)
	if err != nil {
		return nil, err
	}

	return s.createJSONResponse(models.BodyFrameResponse{FrameSize: size})
}

func (s *HealthServer) handleCalculateBodyFat(_ *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params bodyFatParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	gender := models.Gender(params.Gender)
	pct, err := utils.CalculateBodyFat(gender, params.HeightCm, params.NeckCircumferenceCm, params.WaistCircumferenceCm, params.HipCircumferenceCm)
	if err != nil {
		return nil, err
	}

	return s.createJSONResponse(models.BodyFatResponse{
		BodyFatPercentage: math.Round(pct*100) / 100,
		Category:          utils.BodyFatCategory(gender, pct),
	})
}

func (s *HealthServer) handleCalculateMacros(_ *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params macroParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	resp := utils.CalculateMacros(models.MacroRequest{
		Gender:            models.Gender(params.Gender),
		Age:               params.Age,
		WeightKg:          params.WeightKg,
		HeightCm:          params.HeightCm,
		ActivityLevel:     models.ActivityLevel(params.ActivityLevel),
		Goal:              models.Goal(params.Goal),
		BodyFatPercentage: params.BodyFatPercentage,
	})
	return s.createJSONResponse(resp)
}

func (s *HealthServer) handleFoodNutrition(r *http.Request, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params foodNutritionParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	report, err := s.nutrition.Aggregate(r.Context(), params.Ingredients, params.Amounts)
	if err != nil {
		return nil, err
	}
	return s.createJSONResponse(report)
}
