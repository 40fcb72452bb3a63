package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// OperationType represents the type of operation performed
type OperationType string

const (
	OperationCompute OperationType = "COMPUTE"
	OperationExport  OperationType = "EXPORT"
	OperationReject  OperationType = "REJECT"
)

// ResourceType represents the type of resource being produced
type ResourceType string

const (
	ResourceAdvice ResourceType = "advice"
	ResourceReport ResourceType = "advice_report"
)

// RequestInfo identifies the caller of an operation
type RequestInfo struct {
	RequestID string
	IPAddress string
	UserAgent string
}

type requestInfoKey struct{}

// WithRequestInfo attaches caller details to a context
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFromContext returns the caller details stored in ctx, if any
func RequestInfoFromContext(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}

// AuditLog represents an audit log entry. Biometric values are never recorded.
type AuditLog struct {
	OperationType  OperationType
	ResourceType   ResourceType
	ResourceID     string
	Timestamp      time.Time
	AdditionalData map[string]string
}

// Logger writes audit entries to the structured log
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates a new audit logger
func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{
		logger: logger.Named("audit"),
	}
}

// Log emits an audit log entry, enriched with the request details found in ctx
func (l *Logger) Log(ctx context.Context, entry AuditLog) {
	// Set timestamp if not provided
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	fields := []zap.Field{
		zap.String("operation", string(entry.OperationType)),
		zap.String("resource_type", string(entry.ResourceType)),
		zap.String("resource_id", entry.ResourceID),
		zap.Time("timestamp", entry.Timestamp),
	}

	if info, ok := RequestInfoFromContext(ctx); ok {
		fields = append(fields,
			zap.String("request_id", info.RequestID),
			zap.String("ip_address", info.IPAddress),
			zap.String("user_agent", info.UserAgent),
		)
	}

	for k, v := range entry.AdditionalData {
		fields = append(fields, zap.String(k, v))
	}

	l.logger.Info("Audit log entry", fields...)
}

// LogCompute logs a successful advice computation
func (l *Logger) LogCompute(ctx context.Context, resourceID, category string) {
	l.Log(ctx, AuditLog{
		OperationType:  OperationCompute,
		ResourceType:   ResourceAdvice,
		ResourceID:     resourceID,
		AdditionalData: map[string]string{"category": category},
	})
}

// LogExport logs a generated report
func (l *Logger) LogExport(ctx context.Context, resourceID, category string) {
	l.Log(ctx, AuditLog{
		OperationType:  OperationExport,
		ResourceType:   ResourceReport,
		ResourceID:     resourceID,
		AdditionalData: map[string]string{"category": category},
	})
}

// LogReject logs input that failed validation
func (l *Logger) LogReject(ctx context.Context, resourceType ResourceType, reason string) {
	l.Log(ctx, AuditLog{
		OperationType:  OperationReject,
		ResourceType:   resourceType,
		AdditionalData: map[string]string{"reason": reason},
	})
}
