package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthapi/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bmi", CalculateBMI)
	r.POST("/body-frame", CalculateBodyFrame)
	r.POST("/body-fat", CalculateBodyFat)
	r.POST("/macros", CalculateMacros)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateBMI_Endpoint(t *testing.T) {
	w := postJSON(t, healthRouter(), "/bmi", `{"weight_kg": 70, "height_cm": 175}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BMIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 22.86, resp.BMI, 0.01)
	assert.Equal(t, "Normal weight", resp.Category)
}

func TestCalculateBMI_Endpoint_RejectsMissingFields(t *testing.T) {
	w := postJSON(t, healthRouter(), "/bmi", `{"weight_kg": 70}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateBodyFrame_Endpoint(t *testing.T) {
	w := postJSON(t, healthRouter(), "/body-frame",
		`{"wrist_circumference_cm": 17, "height_cm": 180, "gender": "male"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BodyFrameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.FrameSmall, resp.FrameSize)
}

func TestCalculateBodyFat_Endpoint(t *testing.T) {
	w := postJSON(t, healthRouter(), "/body-fat",
		`{"gender": "male", "age": 30, "weight_kg": 80, "height_cm": 180,
		  "neck_circumference_cm": 38, "waist_circumference_cm": 85}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BodyFatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 16.11, resp.BodyFatPercentage, 0.05)
	assert.Equal(t, "Fitness", resp.Category)
}

func TestCalculateBodyFat_Endpoint_FemaleRequiresHip(t *testing.T) {
	w := postJSON(t, healthRouter(), "/body-fat",
		`{"gender": "female", "age": 30, "weight_kg": 60, "height_cm": 165,
		  "neck_circumference_cm": 33, "waist_circumference_cm": 70}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "hip circumference")
}

func TestCalculateMacros_Endpoint(t *testing.T) {
	w := postJSON(t, healthRouter(), "/macros",
		`{"gender": "male", "age": 30, "weight_kg": 80, "height_cm": 180,
		  "activity_level": "moderate", "goal": "maintain"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MacroResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2759, resp.Calories)
	assert.Equal(t, 128, resp.ProteinG)
}

func TestCalculateMacros_Endpoint_RejectsUnknownActivity(t *testing.T) {
	w := postJSON(t, healthRouter(), "/macros",
		`{"gender": "male", "age": 30, "weight_kg": 80, "height_cm": 180,
		  "activity_level": "heroic", "goal": "maintain"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
