package collections

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/stdtour/stdtour/internal/types"
)

// Provider implements map, set, and iteration demonstrations
type Provider struct{}

// NewProvider creates a collections provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "collections",
		Name:        "Collections Demos",
		Description: "Maps, sets, transformation chains, sequence statistics",
		Category:    types.CategoryCollections,
		Capabilities: []string{
			"maps",
			"sets",
			"iteration",
			"statistics",
		},
		Tools: []types.Tool{
			{
				ID:          "collections.basics",
				Name:        "Map and Set",
				Description: "Insert and look up in a map; membership checks in a set",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "collections.iterate",
				Name:        "Transformation Chain",
				Description: "Map then filter a sequence and collect the survivors",
				Parameters: []types.Parameter{
					{Name: "threshold", Type: "number", Description: "Keep doubled values above this (default 3)", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "collections.stats",
				Name:        "Sequence Statistics",
				Description: "Mean and standard deviation of the transformed sequence",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute routes to the requested demonstration
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, runCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "collections.basics":
		return p.basics(ctx)
	case "collections.iterate":
		return p.iterate(ctx, params)
	case "collections.stats":
		return p.stats(ctx)
	default:
		return types.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) basics(_ context.Context) (*types.Result, error) {
	pairs := map[string]string{
		"key1": "value1",
		"key2": "value2",
	}
	set := map[string]struct{}{
		"item1": {},
		"item2": {},
	}

	keys := sortedKeys(pairs)
	var mapLines []string
	for _, k := range keys {
		mapLines = append(mapLines, fmt.Sprintf("%s=%s", k, pairs[k]))
	}

	members := make([]string, 0, len(set))
	for item := range set {
		members = append(members, item)
	}
	sort.Strings(members)

	_, hasItem1 := set["item1"]
	_, hasItem3 := set["item3"]

	return types.Success(map[string]interface{}{
		"map_size": len(pairs),
		"set_size": len(set),
		"lines": []string{
			fmt.Sprintf("Map: %v", mapLines),
			fmt.Sprintf("Set: %v", members),
			fmt.Sprintf("Set contains item1: %t, item3: %t", hasItem1, hasItem3),
		},
	})
}

func (p *Provider) iterate(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	threshold := 3
	if v, ok := params["threshold"].(float64); ok {
		threshold = int(v)
	}

	numbers := []int{1, 2, 3, 4, 5}
	doubled := mapSlice(numbers, func(n int) int { return n * 2 })
	kept := filterSlice(doubled, func(n int) bool { return n > threshold })

	return types.Success(map[string]interface{}{
		"original": numbers,
		"result":   kept,
		"lines": []string{
			fmt.Sprintf("Original: %v", numbers),
			fmt.Sprintf("Doubled and filtered (>%d): %v", threshold, kept),
		},
	})
}

func (p *Provider) stats(_ context.Context) (*types.Result, error) {
	numbers := []int{1, 2, 3, 4, 5}
	doubled := mapSlice(numbers, func(n int) float64 { return float64(n * 2) })

	mean := stat.Mean(doubled, nil)
	stddev := stat.StdDev(doubled, nil)

	return types.Success(map[string]interface{}{
		"mean":   mean,
		"stddev": stddev,
		"lines": []string{
			fmt.Sprintf("Sequence: %v", doubled),
			fmt.Sprintf("Mean: %.2f, StdDev: %.2f", mean, stddev),
		},
	})
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func filterSlice[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
