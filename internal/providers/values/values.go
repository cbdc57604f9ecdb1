package values

import "fmt"

// Option holds either a value or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some builds a present optional.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None builds an absent optional.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Point renders itself through the Stringer interface.
type Point struct {
	X, Y int
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("Point(%d, %d)", p.X, p.Y)
}

// Complex is a complex number with method-based arithmetic, the Go analog
// of operator overloading.
type Complex struct {
	Re, Im float64
}

// Add returns the component-wise sum.
func (c Complex) Add(other Complex) Complex {
	return Complex{Re: c.Re + other.Re, Im: c.Im + other.Im}
}

// String implements fmt.Stringer.
func (c Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", c.Re, c.Im)
}

// selfReferential holds a pointer into its own field. Valid in Go because
// the garbage collector tracks interior pointers; values are never moved
// out from under them.
type selfReferential struct {
	payload string
	ptr     *string
}

func newSelfReferential(data string) *selfReferential {
	s := &selfReferential{payload: data}
	s.ptr = &s.payload
	return s
}

func (s *selfReferential) data() string {
	return *s.ptr
}
