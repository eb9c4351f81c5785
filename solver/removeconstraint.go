package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cassowary/constraint"
	"github.com/katalvlaran/cassowary/internal/tableau"
)

// RemoveConstraint retracts c and restores an optimal-and-feasible basis.
// Fails with ErrUnknownConstraint if c was never admitted, or
// with ErrInternalSolverError if the tableau's bookkeeping is inconsistent
// (a defect in the algorithm, never something a caller can provoke).
func (s *Solver) RemoveConstraint(c *constraint.Constraint) error {
	tag, ok := s.constraints[c]
	if !ok {
		return fmt.Errorf("%w: constraint %d", ErrUnknownConstraint, c.ID())
	}
	delete(s.constraints, c)

	s.removeErrorContribution(tag.Marker, c.Strength())
	s.removeErrorContribution(tag.Other, c.Strength())

	if _, ok := s.rows[tag.Marker]; ok {
		delete(s.rows, tag.Marker)
	} else {
		leaving, err := s.chooseLeavingRowForMarker(tag.Marker)
		if err != nil {
			return err
		}
		row := s.rows[leaving]
		delete(s.rows, leaving)
		row.SolveForPair(leaving, tag.Marker)
		s.substitute(tag.Marker, row)
	}

	return s.optimize(s.objective)
}

// removeErrorContribution undoes sym's effect on the objective, if sym is
// an error symbol (the marker/other of an inequality or non-required
// equality). Slack, dummy, and invalid symbols are no-ops: only error
// symbols were ever added to the objective in the first place.
func (s *Solver) removeErrorContribution(sym tableau.Symbol, strengthValue float64) {
	if sym.Kind != tableau.KindError {
		return
	}
	if row, ok := s.rows[sym]; ok {
		s.objective.InsertRow(row, -strengthValue)
	} else {
		s.objective.InsertSymbol(sym, -strengthValue)
	}
}

// chooseLeavingRowForMarker runs a three-tier search for a row to pivot
// marker out of, used when marker is not itself basic: among restricted
// (non-external) rows where marker's coefficient is
// negative, the one minimizing -constant/coefficient; failing that, among
// restricted rows where the coefficient is positive, the one minimizing
// |constant|/coefficient; failing that, the last external row containing
// marker at all.
func (s *Solver) chooseLeavingRowForMarker(marker tableau.Symbol) (tableau.Symbol, error) {
	negative, negativeRatio := tableau.InvalidSymbol, math.MaxFloat64
	positive, positiveRatio := tableau.InvalidSymbol, math.MaxFloat64
	external := tableau.InvalidSymbol

	for _, sym := range s.sortedRowSymbols() {
		row := s.rows[sym]
		coeff := row.CoefficientFor(marker)
		if coeff == 0 {
			continue
		}
		if sym.Kind == tableau.KindExternal {
			external = sym
			continue
		}
		if coeff < 0 {
			if r := -row.Constant / coeff; r < negativeRatio {
				negativeRatio, negative = r, sym
			}
		} else {
			if r := math.Abs(row.Constant) / coeff; r < positiveRatio {
				positiveRatio, positive = r, sym
			}
		}
	}

	switch {
	case negative.IsValid():
		return negative, nil
	case positive.IsValid():
		return positive, nil
	case external.IsValid():
		return external, nil
	default:
		return tableau.InvalidSymbol, fmt.Errorf("%w: no leaving row for marker during constraint removal", ErrInternalSolverError)
	}
}
