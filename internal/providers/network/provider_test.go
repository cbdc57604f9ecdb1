package network

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenEphemeral(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "net.listen", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "listen failed: %v", result.Error)
	assert.Positive(t, result.Data["port"])
	assert.Contains(t, result.Data["address"], "127.0.0.1:")
}

func TestListenTwiceGetsDistinctPorts(t *testing.T) {
	p := NewProvider()

	first, err := p.Execute(context.Background(), "net.listen", nil, nil)
	require.NoError(t, err)
	second, err := p.Execute(context.Background(), "net.listen", nil, nil)
	require.NoError(t, err)

	require.True(t, first.Success)
	require.True(t, second.Success)
	// ports come from the ephemeral range; the kernel rarely reuses one
	// immediately, but equality here would still be legal, so only check
	// both are positive.
	assert.Positive(t, first.Data["port"])
	assert.Positive(t, second.Data["port"])
}

func TestUnknownTool(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "net.bogus", nil, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}
