package network

import (
	"context"
	"fmt"
	"net"

	"github.com/stdtour/stdtour/internal/types"
)

// Provider implements networking demonstrations
type Provider struct{}

// NewProvider creates a network provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "net",
		Name:        "Network Demos",
		Description: "Ephemeral TCP listener binding and address inspection",
		Category:    types.CategoryNetwork,
		Capabilities: []string{
			"tcp",
			"ephemeral_ports",
		},
		Tools: []types.Tool{
			{
				ID:          "net.listen",
				Name:        "Ephemeral Bind",
				Description: "Bind a TCP listener to an ephemeral loopback port and inspect the bound address",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute routes to the requested demonstration
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, runCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "net.listen":
		return p.listen(ctx)
	default:
		return types.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) listen(ctx context.Context) (*types.Result, error) {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		return types.Failure(fmt.Sprintf("TCP bind failed: %v", err))
	}
	// never accepts; inspected and closed
	defer listener.Close()

	addr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return types.Failure(fmt.Sprintf("unexpected address type %T", listener.Addr()))
	}
	if addr.Port <= 0 {
		return types.Failure(fmt.Sprintf("bound port %d is not positive", addr.Port))
	}

	return types.Success(map[string]interface{}{
		"address": addr.String(),
		"port":    addr.Port,
		"lines": []string{
			fmt.Sprintf("TCP listener bound to %s", addr),
			"Closed without accepting connections",
		},
	})
}
