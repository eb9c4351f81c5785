package solver

import (
	"fmt"

	"github.com/katalvlaran/cassowary/constraint"
	"github.com/katalvlaran/cassowary/internal/tableau"
	"github.com/katalvlaran/cassowary/strength"
)

// AddEditVariable registers v as an edit variable at strengthValue, by
// admitting the equality constraint "v == 0" at that strength and
// remembering its tag. The anchor starts at 0 and moves only through
// SuggestValue, which tracks the last suggested value itself rather than
// reading v.Value. Fails with ErrDuplicateEditVariable if v is already
// registered, or ErrBadRequiredStrength, since an edit variable's whole
// purpose is to be overridden by SuggestValue, which a required constraint
// could never yield to.
func (s *Solver) AddEditVariable(v *constraint.Variable, strengthValue float64) error {
	if s.HasEditVariable(v) {
		return fmt.Errorf("%w: variable %s", ErrDuplicateEditVariable, v.String())
	}
	if strength.IsRequired(strengthValue) {
		return fmt.Errorf("%w: variable %s", ErrBadRequiredStrength, v.String())
	}

	c, err := constraint.NewConstraint(v, constraint.EQ, constraint.WithStrength(strengthValue))
	if err != nil {
		return err
	}
	if err := s.AddConstraint(c); err != nil {
		return err
	}

	s.edits[v] = &EditInfo{Tag: s.constraints[c], Constraint: c, Constant: 0}

	return nil
}

// RemoveEditVariable unregisters v, retracting the equality constraint
// AddEditVariable admitted for it. Fails with ErrUnknownEditVariable if v
// has no edit registered.
func (s *Solver) RemoveEditVariable(v *constraint.Variable) error {
	info, ok := s.edits[v]
	if !ok {
		return fmt.Errorf("%w: variable %s", ErrUnknownEditVariable, v.String())
	}
	if err := s.RemoveConstraint(info.Constraint); err != nil {
		return err
	}
	delete(s.edits, v)

	return nil
}

// SuggestValue nudges v's edit constraint's target toward value without a
// full re-solve: it adjusts the constant of whichever row currently
// carries v's influence by delta = value - (the value last suggested), then
// runs dualOptimize to restore feasibility.
func (s *Solver) SuggestValue(v *constraint.Variable, value float64) error {
	info, ok := s.edits[v]
	if !ok {
		return fmt.Errorf("%w: variable %s", ErrUnknownEditVariable, v.String())
	}

	delta := value - info.Constant
	info.Constant = value

	marker, other := info.Tag.Marker, info.Tag.Other

	if row, ok := s.rows[marker]; ok {
		row.Constant -= delta
		if row.Constant < 0 {
			s.infeasible = append(s.infeasible, marker)
		}

		return s.dualOptimize()
	}

	if other.IsValid() {
		if row, ok := s.rows[other]; ok {
			row.Constant += delta
			if row.Constant < 0 {
				s.infeasible = append(s.infeasible, other)
			}

			return s.dualOptimize()
		}
	}

	for _, sym := range s.sortedRowSymbols() {
		row := s.rows[sym]
		coeff := row.CoefficientFor(marker)
		if coeff == 0 {
			continue
		}
		row.Constant += delta * coeff
		if row.Constant < 0 && sym.Kind != tableau.KindExternal {
			s.infeasible = append(s.infeasible, sym)
		}
	}

	return s.dualOptimize()
}
