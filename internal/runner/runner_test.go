package runner

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdtour/stdtour/internal/config"
	"github.com/stdtour/stdtour/internal/logging"
	"github.com/stdtour/stdtour/internal/monitoring"
	"github.com/stdtour/stdtour/internal/providers"
	"github.com/stdtour/stdtour/internal/service"
	"github.com/stdtour/stdtour/internal/types"
)

func newTestRunner(t *testing.T, out *bytes.Buffer) *Runner {
	t.Helper()

	reg := service.NewRegistry()
	cfg := config.Default().Tour
	cfg.SleepMillis = 5
	require.NoError(t, providers.RegisterAll(reg, cfg))

	return New(reg, logging.NewNop(), monitoring.NewMetrics(), cfg, out)
}

func TestRunFullProgram(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(t, &out)

	err := r.Run(context.Background(), DefaultProgram)
	require.NoError(t, err)

	transcript := out.String()
	assert.Contains(t, transcript, "=== Standard Library Tour")
	assert.Contains(t, transcript, "1. Spawn Named Worker:")
	assert.Contains(t, transcript, "11. Ephemeral Bind:")
	assert.Contains(t, transcript, "20. Recovery Boundary:")
	assert.Contains(t, transcript, "Future resolved with value: 42")
	assert.Contains(t, transcript, "Caught panic: This is a controlled panic!")
	assert.Contains(t, transcript, fmt.Sprintf("=== Tour complete: %d demonstrations ===", len(DefaultProgram)))
}

func TestRunStopsOnUnknownDemo(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(t, &out)

	err := r.Run(context.Background(), []string{"concurrency.spawn", "ghost.demo", "net.listen"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost.demo")
	// the failing demonstration halts the run before later entries
	assert.NotContains(t, out.String(), "Ephemeral Bind")
}

func TestRunRecordsMetrics(t *testing.T) {
	var out bytes.Buffer

	reg := service.NewRegistry()
	cfg := config.Default().Tour
	cfg.SleepMillis = 1
	require.NoError(t, providers.RegisterAll(reg, cfg))

	metrics := monitoring.NewMetrics()
	r := New(reg, logging.NewNop(), metrics, cfg, &out)

	require.NoError(t, r.Run(context.Background(), []string{"net.listen", "values.option"}))

	summary := metrics.Summary()
	assert.Equal(t, 2, summary["demos_executed"])
	assert.Equal(t, 0, summary["demo_errors"])
}

func TestRunPaced(t *testing.T) {
	var out bytes.Buffer

	reg := service.NewRegistry()
	cfg := config.Default().Tour
	cfg.PaceHz = 1000
	require.NoError(t, providers.RegisterAll(reg, cfg))

	r := New(reg, logging.NewNop(), monitoring.NewMetrics(), cfg, &out)
	require.NoError(t, r.Run(context.Background(), []string{"values.format", "values.complex"}))
}

func TestDefaultProgramResolves(t *testing.T) {
	reg := service.NewRegistry()
	require.NoError(t, providers.RegisterAll(reg, config.Default().Tour))

	for _, toolID := range DefaultProgram {
		_, ok := reg.Tool(toolID)
		assert.True(t, ok, "program entry %s does not resolve to a tool", toolID)
	}
}

func TestDefaultProgramCoversCoreTwenty(t *testing.T) {
	assert.GreaterOrEqual(t, len(DefaultProgram), 20)

	seen := make(map[string]bool)
	for _, toolID := range DefaultProgram {
		assert.False(t, seen[toolID], "duplicate program entry %s", toolID)
		seen[toolID] = true
	}
}

func TestRenderFallsBackToJSON(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(t, &out)

	lines := r.render(&types.Result{
		Success: true,
		Data:    map[string]interface{}{"answer": 42},
	})
	require.Len(t, lines, 1)
	assert.JSONEq(t, `{"answer":42}`, lines[0])
}
