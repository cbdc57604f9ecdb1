package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	t.Setenv("TOUR_TEST_VARIABLE", "present")
	p := NewProvider(3)

	result, err := p.Execute(context.Background(), "system.env", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 3, result.Data["sampled"])
	assert.GreaterOrEqual(t, result.Data["total"], 1)
}

func TestExec(t *testing.T) {
	p := NewProvider(3)

	result, err := p.Execute(context.Background(), "system.exec", map[string]interface{}{
		"message": "hello tour",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "exec failed: %v", result.Error)
	assert.Equal(t, "hello tour", result.Data["output"])
}

func TestExecDefaultMessage(t *testing.T) {
	p := NewProvider(3)

	result, err := p.Execute(context.Background(), "system.exec", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "Hello from subprocess", result.Data["output"])
}

func TestMemory(t *testing.T) {
	p := NewProvider(3)

	result, err := p.Execute(context.Background(), "system.memory", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 8, result.Data["size"])
	assert.Equal(t, 3, result.Data["cap_before"])
	assert.GreaterOrEqual(t, result.Data["cap_after"], 13)
	assert.Equal(t, 13, result.Data["length"])
}

func TestInfo(t *testing.T) {
	p := NewProvider(3)

	result, err := p.Execute(context.Background(), "system.info", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.NotEmpty(t, result.Data["os"])
	assert.Positive(t, result.Data["cpus"])
}
