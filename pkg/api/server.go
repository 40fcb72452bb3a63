package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var openAPISpec []byte

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(c *gin.Context)
	// (POST /api/v1/advice)
	PostApiV1Advice(c *gin.Context)
	// (GET /api/v1/advice/options)
	GetApiV1AdviceOptions(c *gin.Context)
	// (POST /api/v1/advice/report)
	PostApiV1AdviceReport(c *gin.Context)
}

// RegisterHandlers creates http.Handler with routing matching the OpenAPI document.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.GET("/health", si.GetHealth)
	router.POST("/api/v1/advice", si.PostApiV1Advice)
	router.GET("/api/v1/advice/options", si.GetApiV1AdviceOptions)
	router.POST("/api/v1/advice/report", si.PostApiV1AdviceReport)
}

// GetSwagger returns the validated OpenAPI document embedded in the binary.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}
