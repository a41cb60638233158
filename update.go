package bounded

// Map applies f to the current value and clamps the result into the bounds.
// Relative adjustments are expressed this way; the increment family below is
// the common special case.
func (v Value[N]) Map(f func(N) N) Value[N] {
	return v.Set(f(v.current))
}

// TryMap applies f to the current value and accepts the result only when it
// stays inside the bounds.
func (v Value[N]) TryMap(f func(N) N) (Value[N], bool) {
	return v.TrySet(f(v.current))
}

// IncBy adds n to the current value, clamping at the upper bound. Integer
// overflow follows native Go arithmetic.
func (v Value[N]) IncBy(n N) Value[N] {
	return v.Set(v.current + n)
}

// DecBy subtracts n from the current value, clamping at the lower bound.
func (v Value[N]) DecBy(n N) Value[N] {
	return v.Set(v.current - n)
}

// Inc adds one, clamping at the upper bound.
func (v Value[N]) Inc() Value[N] { return v.IncBy(1) }

// Dec subtracts one, clamping at the lower bound.
func (v Value[N]) Dec() Value[N] { return v.DecBy(1) }

// TryIncBy adds n to the current value, rejecting results outside the bounds.
func (v Value[N]) TryIncBy(n N) (Value[N], bool) {
	return v.TrySet(v.current + n)
}

// TryDecBy subtracts n from the current value, rejecting results outside the
// bounds.
func (v Value[N]) TryDecBy(n N) (Value[N], bool) {
	return v.TrySet(v.current - n)
}

// TryInc adds one, rejecting when the current value already sits at the upper
// bound.
func (v Value[N]) TryInc() (Value[N], bool) { return v.TryIncBy(1) }

// TryDec subtracts one, rejecting when the current value already sits at the
// lower bound.
func (v Value[N]) TryDec() (Value[N], bool) { return v.TryDecBy(1) }
