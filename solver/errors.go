package solver

import "errors"

// Sentinel errors returned by the solver. Callers branch on these via
// errors.Is; wrapped instances (via fmt.Errorf("%w: ...", ErrX, ...)) still
// satisfy errors.Is against the bare sentinel.
var (
	// ErrDuplicateConstraint indicates AddConstraint was called with a
	// constraint already present in the solver.
	ErrDuplicateConstraint = errors.New("solver: duplicate constraint")

	// ErrUnknownConstraint indicates RemoveConstraint was called with a
	// constraint the solver does not have.
	ErrUnknownConstraint = errors.New("solver: unknown constraint")

	// ErrUnsatisfiableConstraint indicates a required constraint conflicts
	// with the current system: either an all-dummy row ended up with a
	// non-zero constant, or artificial-variable admission failed to drive
	// the artificial objective to zero.
	ErrUnsatisfiableConstraint = errors.New("solver: unsatisfiable constraint")

	// ErrDuplicateEditVariable indicates AddEditVariable was called for a
	// variable that already has an edit registered.
	ErrDuplicateEditVariable = errors.New("solver: duplicate edit variable")

	// ErrUnknownEditVariable indicates RemoveEditVariable or SuggestValue
	// was called for a variable with no edit registered.
	ErrUnknownEditVariable = errors.New("solver: unknown edit variable")

	// ErrBadRequiredStrength indicates AddEditVariable was called with
	// strength.Required — edit variables can never be hard constraints,
	// since their whole purpose is to be overridden incrementally.
	ErrBadRequiredStrength = errors.New("solver: edit variable cannot have required strength")

	// ErrInternalSolverError indicates an invariant the algorithm itself is
	// supposed to maintain was violated: an unbounded objective during
	// primal optimization, no leaving row found during constraint removal,
	// or no entering symbol found during dual optimization. These are never
	// the caller's fault.
	ErrInternalSolverError = errors.New("solver: internal solver error")
)
