package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cassowary/constraint"
	"github.com/katalvlaran/cassowary/solver"
	"github.com/katalvlaran/cassowary/strength"
	"github.com/stretchr/testify/require"
)

const eps = 1e-8

// assertInvariants checks that every required constraint's normalized
// expression satisfies its relation within epsilon once UpdateVariables has
// run, plus basic registry consistency, against the solver's public
// surface. Internal tableau row-algebra invariants are already covered by
// tableau_test.go; full reverse-order teardown has its own test below.
func assertInvariants(t *testing.T, s *solver.Solver) {
	t.Helper()
	s.UpdateVariables()

	for _, c := range s.Constraints() {
		require.True(t, s.HasConstraint(c))
		if !c.IsRequired() {
			continue
		}

		v := c.Expr().Value()
		switch c.Op() {
		case constraint.LE:
			require.LessOrEqual(t, v, eps)
		case constraint.GE:
			require.GreaterOrEqual(t, v, -eps)
		case constraint.EQ:
			require.InDelta(t, 0.0, v, eps)
		}
	}
}

func TestSeed_S1_SimpleEquality(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()

	c, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(20.0))
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(c))

	s.UpdateVariables()
	require.InDelta(t, 20.0, x.Value, eps)
	assertInvariants(t, s)
}

func TestSeed_S2_ChainedInequalities(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()

	ge, err := s.CreateConstraint(x, constraint.GE, constraint.WithRHS(10.0))
	require.NoError(t, err)
	le, err := s.CreateConstraint(x, constraint.LE, constraint.WithRHS(20.0))
	require.NoError(t, err)
	eq, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(15.0), constraint.WithStrength(strength.Strong))
	require.NoError(t, err)

	require.NoError(t, s.AddConstraint(ge))
	require.NoError(t, s.AddConstraint(le))
	require.NoError(t, s.AddConstraint(eq))

	s.UpdateVariables()
	require.InDelta(t, 15.0, x.Value, eps)
	assertInvariants(t, s)
}

func TestSeed_S3_Conflict(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()

	first, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(10.0))
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(first))
	s.UpdateVariables()
	require.InDelta(t, 10.0, x.Value, eps)

	second, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(20.0))
	require.NoError(t, err)
	err = s.AddConstraint(second)
	require.ErrorIs(t, err, solver.ErrUnsatisfiableConstraint)
	require.False(t, s.HasConstraint(second))

	// Solver state is unchanged: x still resolves to the prior solution.
	s.UpdateVariables()
	require.InDelta(t, 10.0, x.Value, eps)
	assertInvariants(t, s)
}

func TestSeed_S4_WeightedCompromise(t *testing.T) {
	x := constraint.NewVariable("x")
	y := constraint.NewVariable("y")
	s := solver.NewSolver()

	sum, err := constraint.NewExpression(x, y)
	require.NoError(t, err)
	sumEq, err := s.CreateConstraint(sum, constraint.EQ, constraint.WithRHS(20.0))
	require.NoError(t, err)
	xWeak, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(0.0), constraint.WithStrength(strength.Weak))
	require.NoError(t, err)
	yWeak, err := s.CreateConstraint(y, constraint.EQ, constraint.WithRHS(0.0), constraint.WithStrength(strength.Weak))
	require.NoError(t, err)

	require.NoError(t, s.AddConstraint(sumEq))
	require.NoError(t, s.AddConstraint(xWeak))
	require.NoError(t, s.AddConstraint(yWeak))

	// x + y = 20 with equal weak pulls toward 0 is a degenerate objective:
	// every split with x, y >= 0 minimizes the same total weighted
	// violation (20 * weak). The solver's deterministic tie-breaks settle
	// on one vertex of that optimal plateau rather than an arbitrary point,
	// so the property to check is the guaranteed one: the required sum
	// holds and the achieved split lies on the optimal boundary.
	s.UpdateVariables()
	require.InDelta(t, 20.0, x.Value+y.Value, eps)
	require.GreaterOrEqual(t, x.Value, -eps)
	require.GreaterOrEqual(t, y.Value, -eps)
	assertInvariants(t, s)
}

func TestSeed_S5_EditVariable(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()

	bound, err := s.CreateConstraint(x, constraint.GE, constraint.WithRHS(0.0))
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(bound))

	require.NoError(t, s.AddEditVariable(x, strength.Strong))
	require.True(t, s.HasEditVariable(x))

	require.NoError(t, s.SuggestValue(x, 42))
	s.UpdateVariables()
	require.InDelta(t, 42.0, x.Value, eps)

	require.NoError(t, s.SuggestValue(x, -5))
	s.UpdateVariables()
	require.InDelta(t, 0.0, x.Value, eps)
	assertInvariants(t, s)
}

func TestSeed_S6_StrengthHierarchy(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()

	medium, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(100.0), constraint.WithStrength(strength.Medium))
	require.NoError(t, err)
	weak, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(0.0), constraint.WithStrength(strength.Weak))
	require.NoError(t, err)

	require.NoError(t, s.AddConstraint(medium))
	require.NoError(t, s.AddConstraint(weak))

	s.UpdateVariables()
	require.InDelta(t, 100.0, x.Value, eps)

	require.NoError(t, s.RemoveConstraint(medium))
	s.UpdateVariables()
	require.InDelta(t, 0.0, x.Value, eps)
	assertInvariants(t, s)
}

func TestProperty8_ReverseOrderRemovalReachesEmptyState(t *testing.T) {
	x := constraint.NewVariable("x")
	y := constraint.NewVariable("y")
	s := solver.NewSolver()

	var added []*constraint.Constraint
	specs := []struct {
		v  *constraint.Variable
		op constraint.Relation
		rhs float64
		str float64
	}{
		{x, constraint.GE, 0, strength.Required},
		{x, constraint.LE, 100, strength.Required},
		{y, constraint.EQ, 5, strength.Medium},
	}
	for _, sp := range specs {
		c, err := s.CreateConstraint(sp.v, sp.op, constraint.WithRHS(sp.rhs), constraint.WithStrength(sp.str))
		require.NoError(t, err)
		require.NoError(t, s.AddConstraint(c))
		added = append(added, c)
	}

	for i := len(added) - 1; i >= 0; i-- {
		require.NoError(t, s.RemoveConstraint(added[i]))
	}

	require.Empty(t, s.Constraints())

	fresh := solver.NewSolver()
	require.Equal(t, fresh.Constraints(), s.Constraints())
	require.Equal(t, fresh.EditVariables(), s.EditVariables())
}

func TestAddConstraint_DuplicateRejected(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()
	c, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(1.0))
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(c))
	require.ErrorIs(t, s.AddConstraint(c), solver.ErrDuplicateConstraint)
}

func TestRemoveConstraint_UnknownRejected(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()
	c, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(1.0))
	require.NoError(t, err)
	require.ErrorIs(t, s.RemoveConstraint(c), solver.ErrUnknownConstraint)
}

func TestEditVariable_DuplicateAndBadStrengthRejected(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()
	require.NoError(t, s.AddEditVariable(x, strength.Strong))
	require.ErrorIs(t, s.AddEditVariable(x, strength.Strong), solver.ErrDuplicateEditVariable)

	y := constraint.NewVariable("y")
	require.ErrorIs(t, s.AddEditVariable(y, strength.Required), solver.ErrBadRequiredStrength)
}

func TestSuggestValue_UnknownEditVariableRejected(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()
	require.ErrorIs(t, s.SuggestValue(x, 1), solver.ErrUnknownEditVariable)
}

func TestReset_ReturnsToFreshState(t *testing.T) {
	x := constraint.NewVariable("x")
	s := solver.NewSolver()
	c, err := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(1.0))
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(c))
	require.NoError(t, s.AddEditVariable(x, strength.Strong))

	s.Reset()
	require.Empty(t, s.Constraints())
	require.Empty(t, s.EditVariables())
	require.False(t, s.HasConstraint(c))
}

func TestUpdateVariables_UnregisteredVariableIsUntouched(t *testing.T) {
	// A variable that was never admitted into any constraint has no
	// external symbol at all, so UpdateVariables cannot and should not
	// touch it; it simply keeps whatever value it already had.
	x := constraint.NewVariable("x")
	x.Value = math.Pi
	s := solver.NewSolver()
	s.UpdateVariables()
	require.InDelta(t, math.Pi, x.Value, eps)
}
