package tracer

import (
	"context"
	"testing"

	"micro-automation-hub/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabledIsNoop(t *testing.T) {
	shutdown := InitTracer(config.TracingConfig{Enabled: false})

	assert.NoError(t, shutdown(context.Background()))
}
