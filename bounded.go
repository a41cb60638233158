// Package bounded implements an immutable numeric value constrained to a
// closed interval [min, max]. Every update either clamps the candidate to the
// nearest bound or rejects it, so a live Value never escapes its interval.
package bounded

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number constrains the numeric representations a bounded value can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Value is a number constrained to a closed interval. The zero Value is
// usable and pins everything to zero; construct through Between to pick
// bounds. Value is immutable: mutators return a fresh instance and instances
// may be shared across goroutines without synchronization.
type Value[N Number] struct {
	lower   N
	upper   N
	current N
}

// Between constructs a bounded value over the closed interval spanned by a
// and b, in either order. The current value starts at the lower bound.
// a == b is legal and yields a single admissible point.
func Between[N Number](a, b N) Value[N] {
	if b < a {
		a, b = b, a
	}
	return Value[N]{lower: a, upper: b, current: a}
}

// Value returns the current value.
func (v Value[N]) Value() N { return v.current }

// Min returns the lower bound.
func (v Value[N]) Min() N { return v.lower }

// Max returns the upper bound.
func (v Value[N]) Max() N { return v.upper }

// Contains reports whether candidate lies inside [Min, Max], both ends
// inclusive.
func (v Value[N]) Contains(candidate N) bool {
	return v.lower <= candidate && candidate <= v.upper
}

// Set replaces the current value with candidate clamped into [Min, Max].
// It is total: out-of-range candidates saturate to the nearest bound.
func (v Value[N]) Set(candidate N) Value[N] {
	v.current = v.clamp(candidate)
	return v
}

// TrySet replaces the current value with candidate only when it lies inside
// [Min, Max]. The second result reports whether the update was accepted; on
// rejection the first result is the zero Value.
func (v Value[N]) TrySet(candidate N) (Value[N], bool) {
	if !v.Contains(candidate) {
		return Value[N]{}, false
	}
	v.current = candidate
	return v, true
}

func (v Value[N]) clamp(candidate N) N {
	if candidate < v.lower {
		return v.lower
	}
	if candidate > v.upper {
		return v.upper
	}
	return candidate
}

func (v Value[N]) String() string {
	return fmt.Sprintf("%v in [%v, %v]", v.current, v.lower, v.upper)
}
