// Package cassowary is an incremental linear constraint solver: add and
// remove weighted equalities and inequalities over real-valued variables at
// any time, and it keeps an assignment that satisfies every required
// constraint while minimizing the weighted violation of the rest.
//
// 🚀 What is cassowary?
//
//	A small, zero-dependency implementation of the Cassowary algorithm
//	(Badros, Stuckey & Boreham) built around four layers:
//		• Strength: symbolic priorities (required/strong/medium/weak) packed
//		  into a single comparable float64
//		• constraint: Variable, Expression and Constraint — the algebraic
//		  front end users build systems out of
//		• internal/tableau: Symbol and Row — the solver's own simplex
//		  bookkeeping, not part of the public surface
//		• solver: the incremental tableau itself — add/remove constraints,
//		  suggest edit-variable values, publish results
//
// ✨ Why choose cassowary?
//
//   - Incremental — adding or removing one constraint re-solves only what
//     changed, not the whole system
//   - Weighted — conflicting preferences are resolved by strength, not by
//     whichever constraint happened to be added last
//   - Pure Go — no cgo, no hidden deps
//   - Deterministic — every iteration order is defined by symbol id, so the
//     same sequence of calls always produces the same tableau
//
// Under the hood, everything is organized under four subpackages:
//
//	strength/       — symbolic priority arithmetic
//	constraint/      — Variable, Expression, Constraint, the public algebra
//	internal/tableau/ — Symbol, Row: the solver's private simplex primitives
//	solver/          — Solver: the incremental Cassowary algorithm itself
//
// Quick example:
//
//	x := constraint.NewVariable("x")
//	s := solver.NewSolver()
//	c, _ := s.CreateConstraint(x, constraint.EQ, constraint.WithRHS(20.0))
//	_ = s.AddConstraint(c)
//	s.UpdateVariables()
//	// x.Value == 20
//
//	go get github.com/katalvlaran/cassowary
package cassowary
