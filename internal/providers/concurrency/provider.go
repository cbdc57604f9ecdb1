package concurrency

import (
	"context"
	"fmt"
	"sync"

	"github.com/stdtour/stdtour/internal/types"
)

// Provider implements goroutine and synchronization demonstrations
type Provider struct {
	defaultWorkers int
}

// NewProvider creates a concurrency provider. workers is the default
// fan-out width when a tool is called without a "workers" param.
func NewProvider(workers int) *Provider {
	if workers < 1 {
		workers = 3
	}
	return &Provider{defaultWorkers: workers}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "concurrency",
		Name:        "Concurrency Demos",
		Description: "Goroutine spawning, mutex-guarded counters, shared mutable state",
		Category:    types.CategoryConcurrency,
		Capabilities: []string{
			"spawn",
			"join",
			"mutual_exclusion",
			"shared_state",
		},
		Tools: []types.Tool{
			{
				ID:          "concurrency.spawn",
				Name:        "Spawn Named Worker",
				Description: "Launch a named goroutine, collect its greeting, join it",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "Worker name", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "concurrency.counter",
				Name:        "Locked Counter",
				Description: "Fan out workers that each increment a mutex-guarded counter, fan in, report the total",
				Parameters: []types.Parameter{
					{Name: "workers", Type: "number", Description: "Worker count", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "concurrency.shared",
				Name:        "Shared Handles",
				Description: "Two handles to one lock-guarded list observe the same append",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute routes to the requested demonstration
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, runCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "concurrency.spawn":
		return p.spawn(ctx, params)
	case "concurrency.counter":
		return p.counter(ctx, params)
	case "concurrency.shared":
		return p.shared(ctx)
	default:
		return types.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) spawn(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	name, _ := params["name"].(string)
	if name == "" {
		name = "named-worker"
	}

	greeting := make(chan string, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		greeting <- fmt.Sprintf("Worker %q says hello", name)
	}()
	wg.Wait()

	return types.Success(map[string]interface{}{
		"worker": name,
		"lines": []string{
			"Main goroutine spawned a worker",
			<-greeting,
			"Worker joined",
		},
	})
}

func (p *Provider) counter(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	workers := p.defaultWorkers
	if v, ok := params["workers"].(float64); ok && int(v) > 0 {
		workers = int(v)
	} else if v, ok := params["workers"].(int); ok && v > 0 {
		workers = v
	}

	var (
		mu      sync.Mutex
		counter int
		wg      sync.WaitGroup
		lines   []string
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(worker int) {
			defer wg.Done()
			mu.Lock()
			counter++
			lines = append(lines, fmt.Sprintf("Worker %d incremented counter to %d", worker, counter))
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if counter != workers {
		return types.Failure(fmt.Sprintf("lost updates: counter %d != workers %d", counter, workers))
	}

	lines = append(lines, fmt.Sprintf("Final counter value: %d", counter))
	return types.Success(map[string]interface{}{
		"workers": workers,
		"counter": counter,
		"lines":   lines,
	})
}

// sharedList is the shared-ownership/interior-mutability analog: multiple
// handles to one value, mutation through any handle visible through all.
type sharedList struct {
	mu    sync.Mutex
	items []int
}

func (s *sharedList) push(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, v)
}

func (s *sharedList) snapshot() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.items))
	copy(out, s.items)
	return out
}

func (p *Provider) shared(_ context.Context) (*types.Result, error) {
	original := &sharedList{items: []int{1, 2, 3}}
	clone := original // second handle to the same list

	original.push(4)

	seenByOriginal := original.snapshot()
	seenByClone := clone.snapshot()
	if fmt.Sprint(seenByOriginal) != fmt.Sprint(seenByClone) {
		return types.Failure("handles diverged")
	}

	return types.Success(map[string]interface{}{
		"items": seenByClone,
		"lines": []string{
			fmt.Sprintf("Shared list: %v", seenByOriginal),
			fmt.Sprintf("Second handle also sees: %v", seenByClone),
		},
	})
}
