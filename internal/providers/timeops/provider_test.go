package timeops

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleepMeasuresElapsed(t *testing.T) {
	p := NewProvider(100 * time.Millisecond)

	start := time.Now()
	result, err := p.Execute(context.Background(), "time.sleep", map[string]interface{}{
		"duration_ms": 20.0,
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, "20ms", result.Data["requested"])
}

func TestSleepCancelled(t *testing.T) {
	p := NewProvider(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Execute(ctx, "time.sleep", map[string]interface{}{
		"duration_ms": 5000.0,
	}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestNow(t *testing.T) {
	p := NewProvider(0)

	result, err := p.Execute(context.Background(), "time.now", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.NotEmpty(t, result.Data["wall"])
	assert.Positive(t, result.Data["unix"])
}

func TestRate(t *testing.T) {
	p := NewProvider(0)

	result, err := p.Execute(context.Background(), "time.rate", map[string]interface{}{
		"events":     3.0,
		"per_second": 1000.0,
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 3, result.Data["events"])
}
