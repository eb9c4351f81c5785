package constraint

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/cassowary/strength"
)

// Relation is the comparison operator of a Constraint's normalized form
// "expression <relation> 0".
type Relation int

const (
	// LE is "<= 0".
	LE Relation = iota
	// GE is ">= 0".
	GE
	// EQ is "= 0".
	EQ
)

// String renders the relation as its mathematical symbol.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// constraintIDTick is the module-scoped monotonic allocator for Constraint
// identity, mirroring variableIDTick.
var constraintIDTick int64

// Constraint is an immutable (expression, relation, strength) tuple that
// asserts "expression <relation> 0". Any right-hand side supplied at
// construction time has already been folded into the expression by
// subtraction — the solver only ever sees the normalized form.
type Constraint struct {
	id       int64
	expr     *Expression
	op       Relation
	strength float64
}

// ID returns the constraint's stable identity. Constraints are ordered by
// ID.
func (c *Constraint) ID() int64 {
	return c.id
}

// Expr returns the constraint's normalized left-hand side ("expr <op> 0").
func (c *Constraint) Expr() *Expression {
	return c.expr
}

// Op returns the constraint's relation.
func (c *Constraint) Op() Relation {
	return c.op
}

// Strength returns the constraint's strength, already clipped to
// [0, strength.Required].
func (c *Constraint) Strength() float64 {
	return c.strength
}

// IsRequired reports whether this constraint must be satisfied exactly.
func (c *Constraint) IsRequired() bool {
	return strength.IsRequired(c.strength)
}

// String renders a stable, human-readable form, e.g. "2*v1 - v2 + 3 <= 0
// [strength=1e+06]" for a strong constraint.
func (c *Constraint) String() string {
	return fmt.Sprintf("%s %s 0 [strength=%g]", c.expr.String(), c.op, c.strength)
}

// constraintConfig holds the optional parameters NewConstraint accepts.
type constraintConfig struct {
	rhs      interface{}
	strength float64
}

// ConstraintOption customizes NewConstraint's optional right-hand side and
// strength, using the functional-options shape. It is the only option type
// in this module.
type ConstraintOption func(*constraintConfig)

// WithRHS sets the constraint's right-hand side. rhs may be a float64, int,
// *Variable, or *Expression. Default, if unset, is the scalar 0 — i.e. the
// left-hand side is treated as already normalized.
func WithRHS(rhs interface{}) ConstraintOption {
	return func(cfg *constraintConfig) {
		cfg.rhs = rhs
	}
}

// WithStrength sets the constraint's strength. Default, if unset, is
// strength.Required.
func WithStrength(s float64) ConstraintOption {
	return func(cfg *constraintConfig) {
		cfg.strength = s
	}
}

// NewConstraint builds a Constraint asserting "lhs <op> rhs", folding rhs
// into lhs by subtraction so the stored expression is always the normalized
// "lhs - rhs <op> 0" form required by the solver. lhs may be a float64, int,
// *Variable, or *Expression; so may the optional rhs (via WithRHS).
//
// The optional rhs and strength are threaded through ConstraintOptions
// rather than positional arguments, so a caller who wants neither can just
// omit them and get a required equality/inequality against zero.
func NewConstraint(lhs interface{}, op Relation, opts ...ConstraintOption) (*Constraint, error) {
	cfg := constraintConfig{rhs: 0.0, strength: strength.Required}
	for _, o := range opts {
		o(&cfg)
	}

	lhsExpr, err := toExpression(lhs)
	if err != nil {
		return nil, err
	}
	rhsExpr, err := toExpression(cfg.rhs)
	if err != nil {
		return nil, err
	}
	normalized, err := lhsExpr.Minus(rhsExpr)
	if err != nil {
		return nil, err
	}

	return &Constraint{
		id:       atomic.AddInt64(&constraintIDTick, 1),
		expr:     normalized,
		op:       op,
		strength: strength.Clip(cfg.strength),
	}, nil
}

// toExpression coerces x into an *Expression: an *Expression is returned
// as is, and anything else is passed to NewExpression as a single term, so
// whatever NewExpression rejects fails with ErrMalformedExpression.
func toExpression(x interface{}) (*Expression, error) {
	switch v := x.(type) {
	case *Expression:
		return v, nil
	default:
		return NewExpression(v)
	}
}
