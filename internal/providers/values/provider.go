package values

import (
	"context"
	"fmt"

	"github.com/stdtour/stdtour/internal/types"
)

// Provider implements value-semantics demonstrations
type Provider struct{}

// NewProvider creates a values provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "values",
		Name:        "Value Demos",
		Description: "Explicit error results, optional values, custom formatting, method-based operators, dynamic typing",
		Category:    types.CategoryValues,
		Capabilities: []string{
			"errors",
			"optionals",
			"formatting",
			"operators",
			"dynamic_typing",
		},
		Tools: []types.Tool{
			{
				ID:          "values.result",
				Name:        "Explicit Results",
				Description: "Display the ok and error arms of an explicit outcome",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "values.option",
				Name:        "Optional Values",
				Description: "Present and absent optional values, unwrap-if-present",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "values.format",
				Name:        "Custom Formatting",
				Description: "A type rendering itself through the Stringer interface",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "values.complex",
				Name:        "Complex Addition",
				Description: "Method-based complex addition alongside the built-in complex type",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "values.dyncast",
				Name:        "Dynamic Casts",
				Description: "Boxed values interpreted against a closed set of types, matching tag only",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "values.selfref",
				Name:        "Interior Pointer",
				Description: "A struct holding a pointer into its own field stays valid under the garbage collector",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute routes to the requested demonstration
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, runCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "values.result":
		return p.result(ctx)
	case "values.option":
		return p.option(ctx)
	case "values.format":
		return p.format(ctx)
	case "values.complex":
		return p.complexAdd(ctx)
	case "values.dyncast":
		return p.dyncast(ctx)
	case "values.selfref":
		return p.selfref(ctx)
	default:
		return types.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) result(_ context.Context) (*types.Result, error) {
	describe := func(v int, err error) string {
		if err != nil {
			return fmt.Sprintf("Error: %v", err)
		}
		return fmt.Sprintf("Success: %d", v)
	}

	okLine := describe(42, nil)
	errLine := describe(0, fmt.Errorf("deliberate failure"))

	return types.Success(map[string]interface{}{
		"ok":  okLine,
		"err": errLine,
		"lines": []string{
			okLine,
			errLine,
		},
	})
}

func (p *Provider) option(_ context.Context) (*types.Result, error) {
	some := Some(5)
	none := None[int]()

	lines := []string{
		fmt.Sprintf("Some value: %s", some),
		fmt.Sprintf("None value: %s", none),
	}
	if v, ok := some.Get(); ok {
		lines = append(lines, fmt.Sprintf("Unwrapped some value: %d", v))
	}
	if _, ok := none.Get(); ok {
		return types.Failure("empty optional reported a value")
	}

	return types.Success(map[string]interface{}{
		"some":  some.String(),
		"none":  none.String(),
		"lines": lines,
	})
}

func (p *Provider) format(_ context.Context) (*types.Result, error) {
	point := Point{X: 10, Y: 20}
	rendered := fmt.Sprintf("Custom formatted point: %s", point)

	return types.Success(map[string]interface{}{
		"point": point.String(),
		"lines": []string{rendered},
	})
}

func (p *Provider) complexAdd(_ context.Context) (*types.Result, error) {
	c1 := Complex{Re: 1, Im: 2}
	c2 := Complex{Re: 3, Im: 4}
	sum := c1.Add(c2)

	native := complex(1, 2) + complex(3, 4)
	if real(native) != sum.Re || imag(native) != sum.Im {
		return types.Failure("method-based addition diverged from the built-in complex type")
	}

	return types.Success(map[string]interface{}{
		"sum": sum.String(),
		"lines": []string{
			fmt.Sprintf("Complex addition: %s + %s = %s", c1, c2, sum),
			fmt.Sprintf("Built-in complex128 agrees: %v", native),
		},
	})
}

func (p *Provider) dyncast(_ context.Context) (*types.Result, error) {
	boxed := []interface{}{"Hello, any!", 42, 3.14}

	var lines []string
	matched := 0
	for _, value := range boxed {
		switch v := value.(type) {
		case string:
			lines = append(lines, fmt.Sprintf("String value: %s", v))
			matched++
		case int:
			lines = append(lines, fmt.Sprintf("Integer value: %d", v))
			matched++
		case float64:
			lines = append(lines, fmt.Sprintf("Float value: %g", v))
			matched++
		default:
			lines = append(lines, fmt.Sprintf("Unknown type %T", v))
		}
	}

	// a string never passes an integer assertion
	if _, ok := boxed[0].(int); ok {
		return types.Failure("string matched the integer tag")
	}

	return types.Success(map[string]interface{}{
		"matched": matched,
		"lines":   lines,
	})
}

func (p *Provider) selfref(_ context.Context) (*types.Result, error) {
	node := newSelfReferential("interior data")

	// copying the handle does not disturb the interior pointer
	handle := node
	if handle.data() != "interior data" {
		return types.Failure("interior pointer does not reach the original data")
	}

	return types.Success(map[string]interface{}{
		"data": handle.data(),
		"lines": []string{
			fmt.Sprintf("Interior pointer reads: %s", handle.data()),
			"The garbage collector keeps interior pointers valid; no pinning needed",
		},
	})
}
