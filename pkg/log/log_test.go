package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	std := logrus.StandardLogger()
	previous := std.Out
	std.SetOutput(&buf)
	std.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	t.Cleanup(func() { std.SetOutput(previous) })

	return &buf
}

func TestForContext(t *testing.T) {
	buf := captureLogs(t)
	SetDevelopment(false)
	t.Cleanup(func() { SetDevelopment(true) })

	ctx, id := WithCorrelationID(context.Background(), "")
	ctx = WithTenant(ctx, "tenant-1")
	assert.NotEmpty(t, id)

	ForContext(ctx).WithField("integration_id", "abc").Info("sincronizando")

	out := buf.String()
	assert.Contains(t, out, "correlation_id="+id)
	assert.Contains(t, out, "tenant_id=tenant-1")
	assert.Contains(t, out, "integration_id=abc")
}

func TestDevelopmentFiltersFields(t *testing.T) {
	buf := captureLogs(t)
	SetDevelopment(true)

	ctx, _ := WithCorrelationID(context.Background(), "req-123")
	ForContext(ctx).WithFields(Fields{"remote_addr": "127.0.0.1", "path": "/v1/tickets"}).Info("requisição")

	out := buf.String()
	assert.Contains(t, out, "correlation_id=req-123")
	assert.Contains(t, out, "path=/v1/tickets")
	assert.NotContains(t, out, "remote_addr")
}
