package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/api"
	"go.uber.org/zap"
)

// OpenAPIValidationMiddleware rejects requests whose shape does not match the
// OpenAPI document. Only structure is checked here (required fields, JSON types);
// ranges and enum membership are left to the advice engine so its error codes
// reach the client. Routes missing from the document pass through untouched.
func OpenAPIValidationMiddleware(doc *openapi3.T, logger *zap.Logger) (gin.HandlerFunc, error) {
	// Match on path only, whatever host the server is reached under
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			c.Next()
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		}
		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			detail := validationDetail(err)
			logger.Warn("Request failed OpenAPI validation",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("detail", detail),
			)
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    api.CodeValidationError,
				Message: "Request does not match the API schema",
				Details: &detail,
			})
			return
		}

		c.Next()
	}, nil
}

// validationDetail names the failing field and the reason it failed. The
// schema and the submitted value are left out.
func validationDetail(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			return "/" + strings.Join(pointer, "/") + ": " + schemaErr.Reason
		}
		return schemaErr.Reason
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return fmt.Sprintf("parameter %q: %s", reqErr.Parameter.Name, reqErr.Reason)
		}
		if reqErr.Reason != "" {
			return reqErr.Reason
		}
	}
	return "request is invalid"
}
