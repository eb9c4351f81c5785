// Package constraint is the algebraic front end consumed by the Cassowary
// solver: Variable, Expression, and Constraint value types, plus the
// arithmetic needed to build "expression <relation> 0" relations at a given
// strength.
//
// None of these types hold solver state. A Variable is a stable, user-owned
// handle; an Expression is an immutable constant-plus-coefficients value; a
// Constraint is an immutable (expression, relation, strength) tuple whose
// right-hand side has already been folded into the expression by
// subtraction. The solver package consumes these as opaque inputs and never
// mutates them, except for Variable.Value, which the solver writes only
// from UpdateVariables.
package constraint
