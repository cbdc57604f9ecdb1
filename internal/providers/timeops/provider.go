package timeops

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/stdtour/stdtour/internal/types"
)

// Provider implements time and pacing demonstrations
type Provider struct {
	defaultSleep time.Duration
}

// NewProvider creates a time provider with a default sleep duration.
func NewProvider(sleep time.Duration) *Provider {
	if sleep <= 0 {
		sleep = 100 * time.Millisecond
	}
	return &Provider{defaultSleep: sleep}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "time",
		Name:        "Time Demos",
		Description: "Sleeping, monotonic elapsed measurement, token-bucket pacing",
		Category:    types.CategoryTime,
		Capabilities: []string{
			"sleep",
			"monotonic",
			"pacing",
		},
		Tools: []types.Tool{
			{
				ID:          "time.sleep",
				Name:        "Measured Sleep",
				Description: "Sleep and report the monotonic elapsed duration",
				Parameters: []types.Parameter{
					{Name: "duration_ms", Type: "number", Description: "Sleep duration in milliseconds", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "time.now",
				Name:        "Current Time",
				Description: "Read the wall clock and unix timestamp",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "time.rate",
				Name:        "Paced Waits",
				Description: "Take several tokens from a rate limiter and measure the total wait",
				Parameters: []types.Parameter{
					{Name: "events", Type: "number", Description: "Events to pace (default 3)", Required: false},
					{Name: "per_second", Type: "number", Description: "Events allowed per second (default 100)", Required: false},
				},
				Returns: "object",
			},
		},
	}
}

// Execute routes to the requested demonstration
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, runCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "time.sleep":
		return p.sleep(ctx, params)
	case "time.now":
		return p.now(ctx)
	case "time.rate":
		return p.pace(ctx, params)
	default:
		return types.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) sleep(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	duration := p.defaultSleep
	if ms := numberParam(params, "duration_ms"); ms > 0 {
		duration = time.Duration(ms) * time.Millisecond
	}

	start := time.Now()
	select {
	case <-time.After(duration):
	case <-ctx.Done():
		return types.Failure(fmt.Sprintf("sleep interrupted: %v", ctx.Err()))
	}
	elapsed := time.Since(start)

	if elapsed < duration {
		return types.Failure(fmt.Sprintf("woke early: %v < %v", elapsed, duration))
	}

	return types.Success(map[string]interface{}{
		"requested": duration.String(),
		"elapsed":   elapsed.String(),
		"lines": []string{
			fmt.Sprintf("Slept for %v (requested %v)", elapsed.Round(time.Millisecond), duration),
		},
	})
}

func (p *Provider) now(_ context.Context) (*types.Result, error) {
	now := time.Now()
	return types.Success(map[string]interface{}{
		"wall": now.Format(time.RFC3339),
		"unix": now.Unix(),
		"lines": []string{
			fmt.Sprintf("Wall clock: %s", now.Format(time.RFC3339)),
			fmt.Sprintf("Unix timestamp: %d", now.Unix()),
		},
	})
}

func (p *Provider) pace(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	events := 3
	if n := numberParam(params, "events"); n > 0 {
		events = int(n)
	}
	perSecond := 100.0
	if n := numberParam(params, "per_second"); n > 0 {
		perSecond = n
	}

	limiter := rate.NewLimiter(rate.Limit(perSecond), 1)
	start := time.Now()
	for i := 0; i < events; i++ {
		if err := limiter.Wait(ctx); err != nil {
			return types.Failure(fmt.Sprintf("pacing interrupted: %v", err))
		}
	}
	elapsed := time.Since(start)

	return types.Success(map[string]interface{}{
		"events":  events,
		"elapsed": elapsed.String(),
		"lines": []string{
			fmt.Sprintf("Paced %d events at %.0f/s in %v", events, perSecond, elapsed.Round(time.Millisecond)),
		},
	})
}

func numberParam(params map[string]interface{}, key string) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
