package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type Goal string

const (
	GoalMaintain Goal = "maintain"
	GoalLose     Goal = "lose"
	GoalGain     Goal = "gain"
)

type FrameSize string

const (
	FrameSmall  FrameSize = "small"
	FrameMedium FrameSize = "medium"
	FrameLarge  FrameSize = "large"
)

type BMIRequest struct {
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm float64 `json:"height_cm" binding:"required,gt=0"`
}

type BMIResponse struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

type BodyFrameRequest struct {
	WristCircumferenceCm float64 `json:"wrist_circumference_cm" binding:"required,gt=0"`
	HeightCm             float64 `json:"height_cm" binding:"required,gt=0"`
	Gender               Gender  `json:"gender" binding:"required,oneof=male female"`
}

type BodyFrameResponse struct {
	FrameSize FrameSize `json:"frame_size"`
}

type BodyFatRequest struct {
	Gender               Gender   `json:"gender" binding:"required,oneof=male female"`
	Age                  int      `json:"age" binding:"required,gte=18"`
	WeightKg             float64  `json:"weight_kg" binding:"required,gt=0"`
	HeightCm             float64  `json:"height_cm" binding:"required,gt=0"`
	NeckCircumferenceCm  float64  `json:"neck_circumference_cm" binding:"required,gt=0"`
	WaistCircumferenceCm float64  `json:"waist_circumference_cm" binding:"required,gt=0"`
	// Required for females, ignored for males.
	HipCircumferenceCm *float64 `json:"hip_circumference_cm" binding:"omitempty,gt=0"`
}

type BodyFatResponse struct {
	BodyFatPercentage float64 `json:"body_fat_percentage"`
	Category          string  `json:"category"`
}

type MacroRequest struct {
	Gender            Gender        `json:"gender" binding:"required,oneof=male female"`
	Age               int           `json:"age" binding:"required,gte=18"`
	WeightKg          float64       `json:"weight_kg" binding:"required,gt=0"`
	HeightCm          float64       `json:"height_cm" binding:"required,gt=0"`
	ActivityLevel     ActivityLevel `json:"activity_level" binding:"required,oneof=sedentary light moderate active very_active"`
	Goal              Goal          `json:"goal" binding:"required,oneof=maintain lose gain"`
	BodyFatPercentage *float64      `json:"body_fat_percentage" binding:"omitempty,gte=0,lte=100"`
}

type MacroResponse struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}
