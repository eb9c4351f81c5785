package constraint

import (
	"fmt"
	"sync/atomic"
)

// variableIDTick is the module-scoped monotonic allocator for Variable
// identity. Per spec's design notes, a process-global counter is acceptable
// here (unlike the solver's symbol generator, which is owned per-solver)
// because Variable identity only needs to be stable and ordered, never
// reset, and variables routinely outlive any single solver.
var variableIDTick int64

// Variable is an external, user-visible handle over a single real-valued
// unknown. Its identity (ID) is stable and monotonically increasing in
// creation order; Value holds the most recent value the solver published via
// UpdateVariables. Context is never touched by this package or by solver —
// it exists purely so callers can attach arbitrary bookkeeping (e.g. a UI
// widget reference) to the same handle they hand to the solver.
type Variable struct {
	id int64

	// Name is an optional human-readable label, used only by String.
	Name string

	// Value is the variable's current solved value. The solver writes this
	// field only from UpdateVariables; nothing else in this package or the
	// solver package mutates it on the caller's behalf.
	Value float64

	// Context is caller-owned and never inspected by this module.
	Context interface{}
}

// NewVariable allocates a fresh Variable with a stable, monotonically
// increasing ID. An optional name may be supplied for diagnostics; it has no
// effect on solver behavior.
func NewVariable(name ...string) *Variable {
	v := &Variable{id: atomic.AddInt64(&variableIDTick, 1)}
	if len(name) > 0 {
		v.Name = name[0]
	}

	return v
}

// ID returns the variable's stable identity. Variables are ordered by ID.
func (v *Variable) ID() int64 {
	return v.id
}

// String returns the variable's name if set, else a synthetic "v<id>" form.
func (v *Variable) String() string {
	if v.Name != "" {
		return v.Name
	}

	return fmt.Sprintf("v%d", v.id)
}

// Plus returns a new expression equal to v + term.
func (v *Variable) Plus(term interface{}) (*Expression, error) {
	return NewExpression(v, term)
}

// Minus returns a new expression equal to v - term. Constraint construction
// folds its right-hand side into the left-hand side exactly this way.
func (v *Variable) Minus(term interface{}) (*Expression, error) {
	return NewExpression(v, negate(term))
}

// Times returns a new expression equal to v * coefficient.
func (v *Variable) Times(coefficient float64) (*Expression, error) {
	return NewExpression(Scaled(coefficient, v))
}

// Divide returns a new expression equal to v / divisor.
func (v *Variable) Divide(divisor float64) (*Expression, error) {
	if divisor == 0 {
		return nil, ErrDivideByZero
	}

	return NewExpression(Scaled(1/divisor, v))
}
