package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vcscsvcscs/health-pathway-advisor/internal/audit"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/pdf"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
	"go.uber.org/zap"
)

// ReportOptions holds metadata stamped on every report
type ReportOptions struct {
	Title  string
	Author string
}

// Report is a rendered advice report
type Report struct {
	ID          string
	Filename    string
	Content     []byte
	Advice      *Advice
	GeneratedAt time.Time
}

// ReportRenderer turns report data into a printable document
type ReportRenderer interface {
	Generate(data *pdf.ReportData) ([]byte, error)
}

// ReportService renders advice results as PDF documents
type ReportService struct {
	advice  *AdviceService
	pdfGen  ReportRenderer
	audit   *audit.Logger
	options ReportOptions
	logger  *zap.Logger
	now     func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(
	advice *AdviceService,
	pdfGen ReportRenderer,
	auditLogger *audit.Logger,
	options ReportOptions,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		advice:  advice,
		pdfGen:  pdfGen,
		audit:   auditLogger,
		options: options,
		logger:  logger,
		now:     time.Now,
	}
}

// GenerateReport computes advice for the raw metrics and renders it to PDF.
// Nothing is stored; the caller owns the returned bytes.
func (s *ReportService) GenerateReport(ctx context.Context, raw model.RawMetrics) (*Report, error) {
	advice, err := s.advice.advise(raw)
	if err != nil {
		s.audit.LogReject(ctx, audit.ResourceReport, rejectReason(err))
		return nil, err
	}

	generatedAt := s.now()
	content, err := s.pdfGen.Generate(&pdf.ReportData{
		Title:       s.options.Title,
		Author:      s.options.Author,
		GeneratedAt: generatedAt,
		Metrics:     advice.Metrics,
		Advice:      advice.Result,
	})
	if err != nil {
		s.logger.Error("failed to render advice report",
			zap.Error(err),
			zap.String("advice_id", advice.ID),
		)
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	report := &Report{
		ID:          advice.ID,
		Filename:    fmt.Sprintf("health-pathway-report-%s.pdf", generatedAt.Format("20060102-150405")),
		Content:     content,
		Advice:      advice,
		GeneratedAt: generatedAt,
	}

	s.audit.LogExport(ctx, report.ID, advice.Result.BMI.Category.String())
	s.logger.Info("advice report generated",
		zap.String("report_id", report.ID),
		zap.Int("size_bytes", len(content)),
	)

	return report, nil
}
