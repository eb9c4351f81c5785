package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cassowary/constraint"
	"github.com/katalvlaran/cassowary/internal/tableau"
)

// AddConstraint admits c into the tableau, restoring an optimal-and-feasible
// basis before returning. It fails with ErrDuplicateConstraint if c is
// already admitted, or ErrUnsatisfiableConstraint if c is required and
// conflicts with the currently admitted constraints.
//
// External symbols allocated (via symbolFor) for variables referenced by c
// that the solver has not seen before are retained even if this call
// ultimately fails — see symbolFor's doc comment and DESIGN.md's Open
// Question disposition. No other visible state changes on failure.
func (s *Solver) AddConstraint(c *constraint.Constraint) error {
	if s.HasConstraint(c) {
		return fmt.Errorf("%w: constraint %d", ErrDuplicateConstraint, c.ID())
	}

	row, tag := s.createRow(c)
	subject := s.chooseSubject(row, tag)

	switch {
	case subject.IsValid():
		s.pivotIn(subject, row)
	case row.AllDummies():
		if math.Abs(row.Constant) > tableau.Epsilon {
			return fmt.Errorf("%w: constraint %d is redundant but inconsistent", ErrUnsatisfiableConstraint, c.ID())
		}
		s.pivotIn(tag.Marker, row)
	default:
		if err := s.addWithArtificialVariable(row); err != nil {
			return fmt.Errorf("%w: constraint %d: %s", ErrUnsatisfiableConstraint, c.ID(), err)
		}
	}

	s.constraints[c] = tag

	return s.optimize(s.objective)
}

// pivotIn rewrites row so it is basic in subject (solveFor), propagates that
// substitution across the rest of the tableau, and records the row. Shared
// by AddConstraint's natural-subject and redundant-dummy branches.
func (s *Solver) pivotIn(subject tableau.Symbol, row *tableau.Row) {
	row.SolveFor(subject)
	s.substitute(subject, row)
	s.rows[subject] = row
}

// createRow builds the initial tableau row for c's normalized expression —
// substituting in already-basic variables, then adding the slack/error/
// dummy symbols the constraint's relation and strength call for — and the
// Tag identifying the auxiliary symbols that were introduced. It does not
// touch s.rows or s.constraints.
func (s *Solver) createRow(c *constraint.Constraint) (*tableau.Row, Tag) {
	expr := c.Expr()
	row := tableau.NewRow(expr.Constant())

	for _, p := range expr.Terms() {
		if p.Scalar == 0 {
			continue
		}
		v := p.Term.(*constraint.Variable)
		sym := s.symbolFor(v)
		if basic, ok := s.rows[sym]; ok {
			// Eagerly substitute an already-basic variable's own row.
			row.InsertRow(basic, p.Scalar)
		} else {
			row.InsertSymbol(sym, p.Scalar)
		}
	}

	tag := s.addAuxiliarySymbols(row, c)

	if row.Constant < 0 {
		row.ReverseSign()
	}

	return row, tag
}

// addAuxiliarySymbols adds the slack/error/dummy symbols c's relation and
// strength call for, wiring non-required error symbols into the objective
// with coefficient c.Strength().
func (s *Solver) addAuxiliarySymbols(row *tableau.Row, c *constraint.Constraint) Tag {
	tag := Tag{Marker: tableau.InvalidSymbol, Other: tableau.InvalidSymbol}

	switch c.Op() {
	case constraint.LE, constraint.GE:
		slackCoeff := 1.0
		if c.Op() == constraint.GE {
			slackCoeff = -1.0
		}

		slack := s.symbols.Next(tableau.KindSlack)
		tag.Marker = slack
		row.InsertSymbol(slack, slackCoeff)

		if !c.IsRequired() {
			errSym := s.symbols.Next(tableau.KindError)
			tag.Other = errSym
			row.InsertSymbol(errSym, -slackCoeff)
			s.objective.InsertSymbol(errSym, c.Strength())
		}
	case constraint.EQ:
		if c.IsRequired() {
			dummy := s.symbols.Next(tableau.KindDummy)
			tag.Marker = dummy
			row.InsertSymbol(dummy, 1)
		} else {
			errPlus := s.symbols.Next(tableau.KindError)
			errMinus := s.symbols.Next(tableau.KindError)
			tag.Marker = errPlus
			tag.Other = errMinus
			row.InsertSymbol(errPlus, -1)
			row.InsertSymbol(errMinus, 1)
			s.objective.InsertSymbol(errPlus, c.Strength())
			s.objective.InsertSymbol(errMinus, c.Strength())
		}
	}

	return tag
}

// chooseSubject picks a symbol to make basic for row, minus the all-dummy
// and artificial-variable branches (handled by the caller): any external
// symbol in the row, else the marker or other if it carries a negative
// coefficient. Returns tableau.InvalidSymbol if none apply.
func (s *Solver) chooseSubject(row *tableau.Row, tag Tag) tableau.Symbol {
	for _, sym := range row.Symbols() {
		if sym.Kind == tableau.KindExternal {
			return sym
		}
	}

	if isRestricted(tag.Marker) && row.CoefficientFor(tag.Marker) < 0 {
		return tag.Marker
	}
	if isRestricted(tag.Other) && row.CoefficientFor(tag.Other) < 0 {
		return tag.Other
	}

	return tableau.InvalidSymbol
}

// isRestricted reports whether sym is a slack or error symbol — the kinds
// eligible for the marker/other negative-coefficient pivot test. Dummies
// and externals are never chosen this way.
func isRestricted(sym tableau.Symbol) bool {
	return sym.Kind == tableau.KindSlack || sym.Kind == tableau.KindError
}

// addWithArtificialVariable is the last-resort admission path used when no
// natural pivot subject exists: it allocates a fresh slack, drives an
// artificial objective for that row to zero if feasible, then pivots the
// slack back out of the basis. On success the row has already been fully
// incorporated into the tableau (either basic under the symbol that
// replaced the artificial variable, or not basic at all, if the row turned
// out to be constant); the caller has nothing left to do but record the
// constraint's tag.
func (s *Solver) addWithArtificialVariable(row *tableau.Row) error {
	art := s.symbols.Next(tableau.KindSlack)
	s.rows[art] = row.Clone()
	s.artificial = row.Clone()

	if err := s.optimize(s.artificial); err != nil {
		return err
	}
	success := math.Abs(s.artificial.Constant) < tableau.Epsilon
	s.artificial = nil

	if basicRow, ok := s.rows[art]; ok {
		delete(s.rows, art)

		if len(basicRow.Cells) > 0 {
			entering := firstPivotableSymbol(basicRow)
			if !entering.IsValid() {
				return fmt.Errorf("no pivotable symbol while eliminating artificial variable")
			}
			basicRow.SolveForPair(art, entering)
			s.substitute(entering, basicRow)
			s.rows[entering] = basicRow
		}
	}

	for _, sym := range s.sortedRowSymbols() {
		s.rows[sym].Remove(art)
	}
	s.objective.Remove(art)

	if !success {
		return fmt.Errorf("artificial objective did not reach zero")
	}

	return nil
}

// firstPivotableSymbol returns the lowest-id slack or error symbol in row,
// or tableau.InvalidSymbol if none exists.
func firstPivotableSymbol(row *tableau.Row) tableau.Symbol {
	for _, sym := range row.Symbols() {
		if isRestricted(sym) {
			return sym
		}
	}

	return tableau.InvalidSymbol
}
