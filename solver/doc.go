// Package solver implements the incremental Cassowary constraint solver: an
// algorithm that maintains a set of weighted linear equalities and
// inequalities over real-valued variables and, after each mutation
// (constraint added, constraint removed, edit variable suggested), produces
// an assignment of values to variables that satisfies every required
// constraint and minimizes a weighted sum of violations of the rest.
//
// Solver owns a simplex tableau (internal/tableau), a constraint registry,
// an edit-variable registry, and a single objective row. Every public
// method is synchronous: it runs the algorithm to completion and either
// returns normally — with the tableau restored to optimal-and-feasible — or
// fails with one of the sentinel errors in errors.go, leaving the solver's
// visible state exactly as it was before the call.
//
// The solver is not safe for concurrent use; per its specification it is
// strictly single-threaded, and no method blocks or suspends.
package solver
