package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cassowary/internal/tableau"
)

// optimize runs primal simplex pivots against target until no non-dummy
// cell of target carries a negative coefficient. target is typically
// s.objective, but addWithArtificialVariable also runs it against a
// throwaway artificial-feasibility row.
func (s *Solver) optimize(target *tableau.Row) error {
	for {
		entering := enteringSymbol(target)
		if !entering.IsValid() {
			return nil
		}

		leaving, ratio := tableau.InvalidSymbol, math.MaxFloat64
		for _, sym := range s.sortedRowSymbols() {
			if sym.Kind == tableau.KindExternal {
				continue
			}
			row := s.rows[sym]
			coeff := row.CoefficientFor(entering)
			if coeff >= 0 {
				continue
			}
			if r := -row.Constant / coeff; r < ratio {
				ratio, leaving = r, sym
			}
		}
		if !leaving.IsValid() {
			return fmt.Errorf("%w: objective is unbounded", ErrInternalSolverError)
		}

		s.pivot(leaving, entering)
	}
}

// dualOptimize restores feasibility (every basic row's constant >= 0)
// without disturbing optimality, pivoting out rows recorded in s.infeasible
// one at a time until that list is empty.
func (s *Solver) dualOptimize() error {
	for len(s.infeasible) > 0 {
		leaving := s.infeasible[0]
		s.infeasible = s.infeasible[1:]

		row, ok := s.rows[leaving]
		if !ok || row.Constant >= -tableau.Epsilon {
			continue
		}

		entering, ratio := tableau.InvalidSymbol, math.MaxFloat64
		for _, sym := range row.Symbols() {
			if sym.Kind == tableau.KindDummy {
				continue
			}
			coeff := row.CoefficientFor(sym)
			if coeff <= 0 {
				continue
			}
			if r := s.objective.CoefficientFor(sym) / coeff; r < ratio {
				ratio, entering = r, sym
			}
		}
		if !entering.IsValid() {
			return fmt.Errorf("%w: no entering symbol during dual optimization", ErrInternalSolverError)
		}

		s.pivot(leaving, entering)
	}

	return nil
}

// enteringSymbol returns the lowest-id non-dummy symbol in target with a
// negative coefficient, or tableau.InvalidSymbol if none exists.
func enteringSymbol(target *tableau.Row) tableau.Symbol {
	for _, sym := range target.Symbols() {
		if sym.Kind == tableau.KindDummy {
			continue
		}
		if target.CoefficientFor(sym) < 0 {
			return sym
		}
	}

	return tableau.InvalidSymbol
}

// pivot removes leaving's row, rewrites it as basic in entering, and
// propagates the substitution across the rest of the tableau, the
// objective, and any live artificial row.
func (s *Solver) pivot(leaving, entering tableau.Symbol) {
	row := s.rows[leaving]
	delete(s.rows, leaving)
	row.SolveForPair(leaving, entering)
	s.substitute(entering, row)
	s.rows[entering] = row
}

// substitute replaces every occurrence of sym across the tableau's basic
// rows, the objective, and the live artificial row (if any) with row. Any
// non-external basic row whose constant goes negative as a result is
// appended to s.infeasible for dualOptimize to repair later.
func (s *Solver) substitute(sym tableau.Symbol, row *tableau.Row) {
	for _, basic := range s.sortedRowSymbols() {
		r := s.rows[basic]
		r.Substitute(sym, row)
		if basic.Kind != tableau.KindExternal && r.Constant < -tableau.Epsilon {
			s.infeasible = append(s.infeasible, basic)
		}
	}

	s.objective.Substitute(sym, row)
	if s.artificial != nil {
		s.artificial.Substitute(sym, row)
	}
}
