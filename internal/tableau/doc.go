// Package tableau implements the symbol and row primitives the Cassowary
// solver pivots on: opaque tagged Symbols and the Rows (a constant plus an
// ordered mapping from symbol to coefficient) that make up the simplex
// tableau.
//
// This package is internal because, per the solver's specification, symbols
// have no meaning outside the solver that allocated them — no caller-facing
// API ever exposes one. Everything here is mutated destructively by the
// solver package, which alone decides when rows are copied, substituted, or
// discarded.
package tableau
