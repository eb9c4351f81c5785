package constraint

import "errors"

// ErrMalformedExpression indicates that NewExpression received a term it
// could not interpret: a (scalar, term) pair that was not exactly two
// elements, a pair whose scalar was non-numeric, a pair whose second element
// was neither a *Variable nor an *Expression, or a term of an unsupported
// type entirely.
var ErrMalformedExpression = errors.New("constraint: malformed expression term")

// ErrDivideByZero indicates that an arithmetic helper (Divide) was asked to
// divide by a zero scalar.
var ErrDivideByZero = errors.New("constraint: division by zero")
