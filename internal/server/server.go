// Package server assembles the HTTP stack: services, handlers and the gin
// middleware chain.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/audit"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/config"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/handler"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/middleware"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/pdf"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/service"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/api"
	"go.uber.org/zap"
)

const slowRequestThreshold = 1 * time.Second

// NewRouter wires services and handlers and returns the configured gin engine
func NewRouter(cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	// Initialize services
	auditLogger := audit.NewLogger(logger)
	adviceService := service.NewAdviceService(auditLogger, logger)

	// Initialize PDF generator
	pdfGenerator := pdf.NewPDFGenerator(logger)

	reportService := service.NewReportService(
		adviceService,
		pdfGenerator,
		auditLogger,
		service.ReportOptions{
			Title:  cfg.Report.Title,
			Author: cfg.Report.Author,
		},
		logger,
	)

	// Create a unified handler that implements the ServerInterface
	apiHandler := &APIHandler{
		advice: handler.NewAdviceHandler(adviceService, reportService, logger),
		health: handler.NewHealthHandler(),
	}

	r := gin.New()

	// Add recovery middleware (must be first)
	r.Use(middleware.RecoveryMiddleware(logger))

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID", "X-Report-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// Add request ID middleware
	r.Use(middleware.RequestIDMiddleware())

	// Add request logging middleware
	r.Use(middleware.RequestLoggingMiddleware(logger))

	// Add error logging middleware
	r.Use(middleware.ErrorLoggingMiddleware(logger))

	// Add slow request logging middleware
	r.Use(middleware.SlowRequestLoggingMiddleware(logger, slowRequestThreshold))

	// Validate request bodies against the embedded OpenAPI document
	if cfg.API.ValidateRequests {
		doc, err := api.GetSwagger()
		if err != nil {
			return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
		}
		validator, err := middleware.OpenAPIValidationMiddleware(doc, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize request validation: %w", err)
		}
		r.Use(validator)
	}

	// Register API handlers
	api.RegisterHandlers(r, apiHandler)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Code:    api.CodeNotFound,
			Message: "Route not found",
		})
	})

	return r, nil
}

// APIHandler implements the ServerInterface by delegating to individual handlers
type APIHandler struct {
	advice *handler.AdviceHandler
	health *handler.HealthHandler
}

// Advice endpoints
func (h *APIHandler) PostApiV1Advice(c *gin.Context) {
	h.advice.PostApiV1Advice(c)
}

func (h *APIHandler) PostApiV1AdviceReport(c *gin.Context) {
	h.advice.PostApiV1AdviceReport(c)
}

func (h *APIHandler) GetApiV1AdviceOptions(c *gin.Context) {
	h.advice.GetApiV1AdviceOptions(c)
}

// GetHealth implements the health check endpoint
func (h *APIHandler) GetHealth(c *gin.Context) {
	h.health.GetHealth(c)
}
