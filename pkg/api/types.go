package api

import (
	"encoding/json"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

// AdviceRequest defines model for AdviceRequest.
type AdviceRequest struct {
	// Weight Weight in kilograms
	Weight json.Number `json:"weight" binding:"required"`

	// Height Height in centimeters
	Height json.Number `json:"height" binding:"required"`

	// Age Age in whole years
	Age           json.Number `json:"age" binding:"required"`
	Gender        string      `json:"gender" binding:"required"`
	ActivityLevel string      `json:"activity_level" binding:"required"`
}

// RawMetrics converts the request into unparsed metrics for validation.
func (r AdviceRequest) RawMetrics() model.RawMetrics {
	return model.RawMetrics{
		Weight:        r.Weight.String(),
		Height:        r.Height.String(),
		Age:           r.Age.String(),
		Gender:        r.Gender,
		ActivityLevel: r.ActivityLevel,
	}
}

// AdviceResponse defines model for AdviceResponse.
type AdviceResponse struct {
	RequestId *openapi_types.UUID `json:"request_id,omitempty"`
	model.AdviceResult
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Details *string `json:"details,omitempty"`
}

// Error codes returned in ErrorResponse.Code
const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeUnknownEnumValue = "UNKNOWN_ENUM_VALUE"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeNotFound         = "NOT_FOUND"
)
