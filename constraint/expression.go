package constraint

import (
	"fmt"
	"sort"
	"strings"
)

// Pair couples a scalar coefficient with a Variable or Expression, applied
// before the term is folded into the expression under construction.
type Pair struct {
	Scalar float64
	Term   interface{} // *Variable or *Expression
}

// Scaled builds a Pair, the idiomatic way to contribute "coefficient * x" as
// one term to NewExpression.
func Scaled(coefficient float64, x interface{}) Pair {
	return Pair{Scalar: coefficient, Term: x}
}

// Expression is an immutable constant plus a mapping from Variable to
// coefficient. Term keys are unique by Variable identity; a coefficient of
// exactly zero may be present in terms (e.g. after cancellation) but is
// ignored by the solver and omitted by String.
type Expression struct {
	constant float64
	terms    map[*Variable]float64
}

// NewExpression builds an Expression from a variadic mix of terms. Each term
// must be one of:
//
//   - float64 or int: added to the constant.
//   - *Variable: added with coefficient 1.
//   - *Expression: merged in with coefficient 1 (constant and all terms).
//   - Pair{Scalar, Term}: Term (a *Variable or *Expression) scaled by Scalar
//     before merging.
//   - []interface{} of length exactly 2: a dynamic-input escape hatch
//     equivalent to Pair — element 0 must be a numeric scalar, element 1 a
//     *Variable or *Expression.
//
// Any other shape — a slice of the wrong length, a pair whose scalar isn't
// numeric, a pair whose second element isn't a *Variable/*Expression, or a
// term of an altogether unsupported type — fails with
// ErrMalformedExpression.
func NewExpression(terms ...interface{}) (*Expression, error) {
	e := &Expression{terms: make(map[*Variable]float64)}
	for _, t := range terms {
		if err := e.absorb(t); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// absorb merges a single term into e, dispatching on its dynamic type.
func (e *Expression) absorb(t interface{}) error {
	switch v := t.(type) {
	case nil:
		return fmt.Errorf("%w: nil term", ErrMalformedExpression)
	case float64:
		e.constant += v
	case int:
		e.constant += float64(v)
	case *Variable:
		e.addTerm(v, 1)
	case *Expression:
		e.merge(v, 1)
	case Pair:
		return e.absorbPair(v.Scalar, v.Term)
	case []interface{}:
		if len(v) != 2 {
			return fmt.Errorf("%w: tuple term must have exactly 2 elements, got %d", ErrMalformedExpression, len(v))
		}
		scalar, ok := toFloat(v[0])
		if !ok {
			return fmt.Errorf("%w: tuple scalar must be numeric, got %T", ErrMalformedExpression, v[0])
		}

		return e.absorbPair(scalar, v[1])
	default:
		return fmt.Errorf("%w: unsupported term type %T", ErrMalformedExpression, t)
	}

	return nil
}

// absorbPair merges scalar*term (term a *Variable or *Expression) into e.
func (e *Expression) absorbPair(scalar float64, term interface{}) error {
	switch w := term.(type) {
	case *Variable:
		e.addTerm(w, scalar)
	case *Expression:
		e.merge(w, scalar)
	default:
		return fmt.Errorf("%w: pair term must be *Variable or *Expression, got %T", ErrMalformedExpression, term)
	}

	return nil
}

// addTerm sums coefficient into the entry for v.
func (e *Expression) addTerm(v *Variable, coefficient float64) {
	e.terms[v] += coefficient
}

// merge folds other (scaled by multiplier) into e: constant and every term.
func (e *Expression) merge(other *Expression, multiplier float64) {
	e.constant += multiplier * other.constant
	for v, c := range other.terms {
		e.addTerm(v, multiplier*c)
	}
}

// toFloat converts a scalar-shaped interface{} to float64.
func toFloat(x interface{}) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// negate returns a term equivalent to -1 * x, used by Minus helpers across
// Variable and Expression so that "a.Minus(b)" is exactly "a.Plus(-b)".
func negate(x interface{}) interface{} {
	switch v := x.(type) {
	case float64:
		return -v
	case int:
		return -v
	case *Variable:
		return Scaled(-1, v)
	case *Expression:
		return Scaled(-1, v)
	case Pair:
		return Scaled(-v.Scalar, v.Term)
	default:
		// Unsupported shapes are returned unchanged; absorb will reject
		// them with ErrMalformedExpression downstream.
		return x
	}
}

// Constant returns the expression's constant term.
func (e *Expression) Constant() float64 {
	return e.constant
}

// Terms returns the expression's (variable, coefficient) pairs, sorted by
// variable ID for deterministic iteration. Zero coefficients are included;
// callers that care should filter them.
func (e *Expression) Terms() []Pair {
	vars := make([]*Variable, 0, len(e.terms))
	for v := range e.terms {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].ID() < vars[j].ID() })

	pairs := make([]Pair, 0, len(vars))
	for _, v := range vars {
		pairs = append(pairs, Pair{Scalar: e.terms[v], Term: v})
	}

	return pairs
}

// CoefficientOf returns the coefficient of v in e, or 0 if v does not
// appear.
func (e *Expression) CoefficientOf(v *Variable) float64 {
	return e.terms[v]
}

// IsConstant reports whether every term's coefficient is exactly zero, i.e.
// the expression's value does not depend on any variable.
func (e *Expression) IsConstant() bool {
	for _, c := range e.terms {
		if c != 0 {
			return false
		}
	}

	return true
}

// Value evaluates the expression using the current Value of every variable
// it references.
func (e *Expression) Value() float64 {
	v := e.constant
	for variable, c := range e.terms {
		v += c * variable.Value
	}

	return v
}

// Plus returns a new expression equal to e + term.
func (e *Expression) Plus(term interface{}) (*Expression, error) {
	return NewExpression(e, term)
}

// Minus returns a new expression equal to e - term.
func (e *Expression) Minus(term interface{}) (*Expression, error) {
	return NewExpression(e, negate(term))
}

// Times returns a new expression equal to e * coefficient.
func (e *Expression) Times(coefficient float64) (*Expression, error) {
	return NewExpression(Scaled(coefficient, e))
}

// Divide returns a new expression equal to e / divisor.
func (e *Expression) Divide(divisor float64) (*Expression, error) {
	if divisor == 0 {
		return nil, ErrDivideByZero
	}

	return NewExpression(Scaled(1/divisor, e))
}

// String renders a stable, deterministic text form, e.g. "2*v1 - v2 + 3".
// Term order follows Terms() (ascending variable ID); zero coefficients are
// omitted.
func (e *Expression) String() string {
	var b strings.Builder
	first := true
	for _, p := range e.Terms() {
		c := p.Scalar
		if c == 0 {
			continue
		}
		v := p.Term.(*Variable)

		sign := "+"
		if c < 0 {
			sign = "-"
			c = -c
		}
		if first {
			if sign == "-" {
				b.WriteString("-")
			}
			first = false
		} else {
			fmt.Fprintf(&b, " %s ", sign)
		}
		if c == 1 {
			b.WriteString(v.String())
		} else {
			fmt.Fprintf(&b, "%g*%s", c, v.String())
		}
	}

	if e.constant != 0 || first {
		if first {
			fmt.Fprintf(&b, "%g", e.constant)
		} else if e.constant > 0 {
			fmt.Fprintf(&b, " + %g", e.constant)
		} else {
			fmt.Fprintf(&b, " - %g", -e.constant)
		}
	}

	return b.String()
}
