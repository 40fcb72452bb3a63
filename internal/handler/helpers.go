package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/advisor"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/api"
)

// stringPtr creates a pointer to a string
func stringPtr(s string) *string {
	return &s
}

// requestUUID returns the request ID set by the request ID middleware, if it is a UUID
func requestUUID(c *gin.Context) *types.UUID {
	u, err := uuid.Parse(c.GetString("request_id"))
	if err != nil {
		return nil
	}
	apiUUID := types.UUID(u)
	return &apiUUID
}

// errorResponse maps an advice error onto an HTTP status and API error body
func errorResponse(err error, message string) (int, api.ErrorResponse) {
	switch {
	case errors.Is(err, advisor.ErrUnknownEnumValue):
		return http.StatusBadRequest, api.ErrorResponse{
			Code:    api.CodeUnknownEnumValue,
			Message: "Unsupported gender or activity level",
			Details: stringPtr(err.Error()),
		}
	case errors.Is(err, advisor.ErrInvalidInput):
		return http.StatusBadRequest, api.ErrorResponse{
			Code:    api.CodeValidationError,
			Message: "Please enter valid values for all fields",
			Details: stringPtr(err.Error()),
		}
	default:
		return http.StatusInternalServerError, api.ErrorResponse{
			Code:    api.CodeInternalError,
			Message: message,
		}
	}
}
