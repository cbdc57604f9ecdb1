package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sort"
	"strings"
	"unsafe"

	"github.com/stdtour/stdtour/internal/types"
)

// Provider implements environment, subprocess, and memory demonstrations
type Provider struct {
	envSample int
}

// NewProvider creates a system provider. envSample is how many environment
// variables the env demonstration displays.
func NewProvider(envSample int) *Provider {
	if envSample < 1 {
		envSample = 3
	}
	return &Provider{envSample: envSample}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "system",
		Name:        "System Demos",
		Description: "Environment access, subprocess spawning, memory introspection, runtime info",
		Category:    types.CategorySystem,
		Capabilities: []string{
			"environment",
			"subprocess",
			"memory",
			"runtime",
		},
		Tools: []types.Tool{
			{
				ID:          "system.env",
				Name:        "Environment Sample",
				Description: "Display the first few environment variables",
				Parameters: []types.Parameter{
					{Name: "count", Type: "number", Description: "Variables to display", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "system.exec",
				Name:        "Subprocess Echo",
				Description: "Spawn an echo subprocess and capture its output",
				Parameters: []types.Parameter{
					{Name: "message", Type: "string", Description: "Message to echo", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "system.memory",
				Name:        "Memory Introspection",
				Description: "Value sizes and alignment, slice capacity growth, heap stats",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.info",
				Name:        "Runtime Info",
				Description: "OS, architecture, CPU count, goroutine count",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute routes to the requested demonstration
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, runCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "system.env":
		return p.env(ctx, params)
	case "system.exec":
		return p.exec(ctx, params)
	case "system.memory":
		return p.memory(ctx)
	case "system.info":
		return p.info(ctx)
	default:
		return types.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) env(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	count := p.envSample
	if v, ok := params["count"].(float64); ok && int(v) > 0 {
		count = int(v)
	}

	env := os.Environ()
	sort.Strings(env)
	if count > len(env) {
		count = len(env)
	}

	lines := make([]string, 0, count)
	for _, entry := range env[:count] {
		key, value, _ := strings.Cut(entry, "=")
		if len(value) > 40 {
			value = value[:40] + "..."
		}
		lines = append(lines, fmt.Sprintf("%s: %s", key, value))
	}

	return types.Success(map[string]interface{}{
		"total":   len(env),
		"sampled": count,
		"lines":   lines,
	})
}

func (p *Provider) exec(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	message, _ := params["message"].(string)
	if message == "" {
		message = "Hello from subprocess"
	}

	output, err := exec.CommandContext(ctx, "echo", message).Output()
	if err != nil {
		return types.Failure(fmt.Sprintf("failed to execute command: %v", err))
	}
	captured := strings.TrimSpace(string(output))

	return types.Success(map[string]interface{}{
		"output": captured,
		"lines": []string{
			fmt.Sprintf("Command output: %s", captured),
		},
	})
}

func (p *Provider) memory(_ context.Context) (*types.Result, error) {
	value := int64(42)
	size := unsafe.Sizeof(value)
	align := unsafe.Alignof(value)

	data := make([]int, 3)
	capBefore := cap(data)
	data = append(data, make([]int, 10)...)
	capAfter := cap(data)

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	return types.Success(map[string]interface{}{
		"size":       int(size),
		"align":      int(align),
		"cap_before": capBefore,
		"cap_after":  capAfter,
		"length":     len(data),
		"heap_alloc": stats.HeapAlloc,
		"lines": []string{
			fmt.Sprintf("Value: %d, Size: %d bytes, Alignment: %d bytes", value, size, align),
			fmt.Sprintf("Slice capacity before growth: %d, after: %d", capBefore, capAfter),
			fmt.Sprintf("Heap in use: %d KiB", stats.HeapAlloc/1024),
		},
	})
}

func (p *Provider) info(_ context.Context) (*types.Result, error) {
	return types.Success(map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"cpus":       runtime.NumCPU(),
		"goroutines": runtime.NumGoroutine(),
		"go_version": runtime.Version(),
		"lines": []string{
			fmt.Sprintf("%s/%s, %d CPUs, %d goroutines, %s",
				runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), runtime.NumGoroutine(), runtime.Version()),
		},
	})
}
