package recovery

import (
	"context"
	"fmt"
	"runtime"

	"github.com/stdtour/stdtour/internal/types"
)

// Provider implements panic recovery demonstrations
type Provider struct{}

// NewProvider creates a recovery provider
func NewProvider() *Provider {
	return &Provider{}
}

// PanicRecord wraps a recovered panic value together with the goroutine
// stack captured at the point of recovery.
type PanicRecord struct {
	Value any
	Stack string
}

// Message returns the textual payload when there is one, otherwise a
// generic unknown notice.
func (r *PanicRecord) Message() string {
	switch v := r.Value.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return "unknown panic payload"
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "recover",
		Name:        "Recovery Demos",
		Description: "Deliberate panics caught at a single recovery boundary",
		Category:    types.CategoryRecovery,
		Capabilities: []string{
			"panic",
			"recover",
		},
		Tools: []types.Tool{
			{
				ID:          "recover.boundary",
				Name:        "Recovery Boundary",
				Description: "Trigger a controlled panic, recover, and inspect the payload",
				Parameters: []types.Parameter{
					{Name: "message", Type: "string", Description: "Panic payload (default controlled message)", Required: false},
				},
				Returns: "object",
			},
		},
	}
}

// Execute routes to the requested demonstration
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, runCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "recover.boundary":
		return p.boundary(ctx, params)
	default:
		return types.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) boundary(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	message, _ := params["message"].(string)
	if message == "" {
		message = "This is a controlled panic!"
	}

	record := catch(func() {
		panic(message)
	})
	if record == nil {
		return types.Failure("the deliberate panic was not recovered")
	}
	if record.Message() != message {
		return types.Failure(fmt.Sprintf("recovered payload %q differs from %q", record.Message(), message))
	}

	return types.Success(map[string]interface{}{
		"recovered":  record.Message(),
		"stack_size": len(record.Stack),
		"lines": []string{
			"About to panic...",
			fmt.Sprintf("Caught panic: %s", record.Message()),
		},
	})
}

// catch runs fn inside the recovery boundary and returns the captured
// panic, or nil if fn returned normally.
func catch(fn func()) (record *PanicRecord) {
	defer func() {
		if v := recover(); v != nil {
			buf := make([]byte, 8192)
			n := runtime.Stack(buf, false)
			record = &PanicRecord{Value: v, Stack: string(buf[:n])}
		}
	}()
	fn()
	return nil
}
