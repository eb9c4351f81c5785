package solver

import (
	"sort"

	"github.com/katalvlaran/cassowary/constraint"
	"github.com/katalvlaran/cassowary/internal/tableau"
)

// Tag records the one or two symbols that identify an admitted constraint
// in the tableau, so it can be found again and removed. For inequalities:
// Marker is the slack; Other is the error symbol (if non-required) or
// tableau.InvalidSymbol. For non-required equalities: Marker and Other are
// the two error symbols (errPlus, errMinus). For required equalities:
// Marker is a dummy; Other is tableau.InvalidSymbol.
type Tag struct {
	Marker tableau.Symbol
	Other  tableau.Symbol
}

// EditInfo is the per-edit-variable bookkeeping the solver keeps: the tag
// of the equality constraint the edit variable was admitted as, that
// constraint itself (needed by RemoveEditVariable), and the last value
// SuggestValue was called with (0 initially).
type EditInfo struct {
	Tag        Tag
	Constraint *constraint.Constraint
	Constant   float64
}

// Solver owns the tableau, the symbol generator, the constraint and edit
// registries, and the objective row. Zero value is not usable; construct
// with NewSolver.
type Solver struct {
	constraints map[*constraint.Constraint]Tag
	rows        map[tableau.Symbol]*tableau.Row
	vars        map[*constraint.Variable]tableau.Symbol
	edits       map[*constraint.Variable]*EditInfo
	infeasible  []tableau.Symbol
	objective   *tableau.Row
	artificial  *tableau.Row
	symbols     tableau.Generator
}

// NewSolver returns an empty, optimal, feasible Solver — equivalent to the
// state any Solver returns to after every one of its constraints has been
// removed in reverse admission order (Reset produces the same state more
// directly).
func NewSolver() *Solver {
	return &Solver{
		constraints: make(map[*constraint.Constraint]Tag),
		rows:        make(map[tableau.Symbol]*tableau.Row),
		vars:        make(map[*constraint.Variable]tableau.Symbol),
		edits:       make(map[*constraint.Variable]*EditInfo),
		objective:   tableau.NewRow(0),
	}
}

// Reset drops every constraint, edit variable, and row, returning the
// solver to the state NewSolver produces. Equivalent to — but cheaper
// than — removing every admitted constraint in reverse order.
func (s *Solver) Reset() {
	s.constraints = make(map[*constraint.Constraint]Tag)
	s.rows = make(map[tableau.Symbol]*tableau.Row)
	s.vars = make(map[*constraint.Variable]tableau.Symbol)
	s.edits = make(map[*constraint.Variable]*EditInfo)
	s.infeasible = nil
	s.objective = tableau.NewRow(0)
	s.artificial = nil
	s.symbols = tableau.Generator{}
}

// CreateConstraint is a thin delegate to constraint.NewConstraint. It
// touches no solver state — callers still pass the result to AddConstraint
// to admit it.
func (s *Solver) CreateConstraint(lhs interface{}, op constraint.Relation, opts ...constraint.ConstraintOption) (*constraint.Constraint, error) {
	return constraint.NewConstraint(lhs, op, opts...)
}

// HasConstraint reports whether c is currently admitted.
func (s *Solver) HasConstraint(c *constraint.Constraint) bool {
	_, ok := s.constraints[c]

	return ok
}

// HasEditVariable reports whether v currently has an edit registered.
func (s *Solver) HasEditVariable(v *constraint.Variable) bool {
	_, ok := s.edits[v]

	return ok
}

// Constraints returns every currently admitted constraint, sorted by ID.
// Read-only snapshot; does not mutate solver state.
func (s *Solver) Constraints() []*constraint.Constraint {
	out := make([]*constraint.Constraint, 0, len(s.constraints))
	for c := range s.constraints {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}

// EditVariables returns every variable that currently has an edit
// registered, sorted by ID. Read-only snapshot; does not mutate solver
// state.
func (s *Solver) EditVariables() []*constraint.Variable {
	out := make([]*constraint.Variable, 0, len(s.edits))
	for v := range s.edits {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}

// UpdateVariables publishes the current solution: for every registered user
// variable, its Value is set to the constant of its basic row, or 0 if it
// is not currently basic. Call this after a batch of mutations to
// materialize the assignment.
func (s *Solver) UpdateVariables() {
	for v, sym := range s.vars {
		if row, ok := s.rows[sym]; ok {
			v.Value = row.Constant
		} else {
			v.Value = 0
		}
	}
}

// sortedRowSymbols returns the symbols currently basic in s.rows, sorted
// ascending by ID. Used everywhere the algorithm needs to walk the tableau
// deterministically.
func (s *Solver) sortedRowSymbols() []tableau.Symbol {
	out := make([]tableau.Symbol, 0, len(s.rows))
	for sym := range s.rows {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// symbolFor returns the external symbol for v, allocating one if v has not
// been seen before. A symbol allocated here for a variable whose constraint
// later fails to be admitted by AddConstraint is deliberately left in
// place (see DESIGN.md): it is cheap to reuse and cleaning it up is not
// worth the bookkeeping.
func (s *Solver) symbolFor(v *constraint.Variable) tableau.Symbol {
	if sym, ok := s.vars[v]; ok {
		return sym
	}
	sym := s.symbols.Next(tableau.KindExternal)
	s.vars[v] = sym

	return sym
}
