package futures

import (
	"context"
	"fmt"

	"github.com/stdtour/stdtour/internal/future"
	"github.com/stdtour/stdtour/internal/types"
)

// Provider implements poll-based future demonstrations
type Provider struct{}

// NewProvider creates a futures provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "future",
		Name:        "Future Demos",
		Description: "Polling an immediate-value future with a no-op waker; completing a deferred future",
		Category:    types.CategoryFuture,
		Capabilities: []string{
			"polling",
			"wakers",
		},
		Tools: []types.Tool{
			{
				ID:          "future.ready",
				Name:        "Immediate Value",
				Description: "Poll a precomputed future once; it resolves on the first poll",
				Parameters: []types.Parameter{
					{Name: "value", Type: "number", Description: "Value to wrap (default 42)", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "future.deferred",
				Name:        "Deferred Value",
				Description: "Poll pending, complete, poll ready; shows the waker path",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute routes to the requested demonstration
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, runCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "future.ready":
		return p.ready(ctx, params)
	case "future.deferred":
		return p.deferred(ctx)
	default:
		return types.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) ready(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	value := 42
	if v, ok := params["value"].(float64); ok {
		value = int(v)
	}

	f := future.NewValue(value)
	cx := future.NewContext(future.NoopWaker())

	poll := f.Poll(cx)
	resolved, ok := poll.Value()
	if !ok {
		return types.Failure("immediate-value future reported pending")
	}
	if resolved != value {
		return types.Failure(fmt.Sprintf("future resolved with %d, expected %d", resolved, value))
	}

	return types.Success(map[string]interface{}{
		"value": resolved,
		"lines": []string{
			fmt.Sprintf("Future resolved with value: %d", resolved),
			"The no-op waker was never needed",
		},
	})
}

func (p *Provider) deferred(_ context.Context) (*types.Result, error) {
	d := future.NewDeferred[int]()
	woke := false
	cx := future.NewContext(future.NewWaker(func() { woke = true }))

	if d.Poll(cx).IsReady() {
		return types.Failure("deferred future was ready before completion")
	}

	d.Complete(7)
	if !woke {
		return types.Failure("completion did not invoke the registered waker")
	}

	resolved, ok := d.Poll(cx).Value()
	if !ok {
		return types.Failure("deferred future still pending after completion")
	}

	return types.Success(map[string]interface{}{
		"value": resolved,
		"lines": []string{
			"First poll: pending, waker registered",
			"Completion invoked the waker",
			fmt.Sprintf("Second poll: ready with value %d", resolved),
		},
	})
}
