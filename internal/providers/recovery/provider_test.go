package recovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryRecoversTextualPayload(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "recover.boundary", map[string]interface{}{
		"message": "deliberate",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "boundary failed: %v", result.Error)
	assert.Equal(t, "deliberate", result.Data["recovered"])
	assert.Positive(t, result.Data["stack_size"])
}

func TestBoundaryDefaultMessage(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "recover.boundary", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "This is a controlled panic!", result.Data["recovered"])
}

func TestCatchNoPanic(t *testing.T) {
	assert.Nil(t, catch(func() {}))
}

func TestCatchCapturesStack(t *testing.T) {
	record := catch(func() { panic("boom") })
	require.NotNil(t, record)
	assert.Equal(t, "boom", record.Message())
	assert.Contains(t, record.Stack, "goroutine")
}

func TestMessageKinds(t *testing.T) {
	assert.Equal(t, "text", (&PanicRecord{Value: "text"}).Message())
	assert.Equal(t, "wrapped", (&PanicRecord{Value: errors.New("wrapped")}).Message())
	assert.Equal(t, "unknown panic payload", (&PanicRecord{Value: 42}).Message())
}
