package futures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReady(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "future.ready", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "ready failed: %v", result.Error)
	assert.Equal(t, 42, result.Data["value"])
}

func TestReadyCustomValue(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "future.ready", map[string]interface{}{
		"value": 7.0,
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 7, result.Data["value"])
}

func TestDeferred(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "future.deferred", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "deferred failed: %v", result.Error)
	assert.Equal(t, 7, result.Data["value"])
	assert.Len(t, result.Lines(), 3)
}
