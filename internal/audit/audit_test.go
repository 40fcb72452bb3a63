package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_LogCompute_IncludesRequestInfo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewLogger(zap.New(core))

	ctx := WithRequestInfo(context.Background(), RequestInfo{
		RequestID: "req-1",
		IPAddress: "10.0.0.1",
		UserAgent: "test-agent",
	})
	logger.LogCompute(ctx, "advice-1", "Healthy")

	entries := logs.FilterMessage("Audit log entry").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "COMPUTE", fields["operation"])
	assert.Equal(t, "advice", fields["resource_type"])
	assert.Equal(t, "advice-1", fields["resource_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "10.0.0.1", fields["ip_address"])
	assert.Equal(t, "test-agent", fields["user_agent"])
	assert.Equal(t, "Healthy", fields["category"])
	assert.Contains(t, fields, "timestamp")
}

func TestLogger_LogWithoutRequestInfo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewLogger(zap.New(core))

	logger.LogReject(context.Background(), ResourceReport, "invalid input")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "REJECT", fields["operation"])
	assert.Equal(t, "advice_report", fields["resource_type"])
	assert.Equal(t, "invalid input", fields["reason"])
	assert.NotContains(t, fields, "request_id")
}

func TestRequestInfoFromContext_Missing(t *testing.T) {
	_, ok := RequestInfoFromContext(context.Background())
	assert.False(t, ok)
}
