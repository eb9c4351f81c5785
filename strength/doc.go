// Package strength compresses the three-level symbolic priority used by the
// Cassowary algorithm (strong, medium, weak, each independently weighted)
// into a single non-negative real number.
//
// A strength is built from three components a, b, c and a multiplicative
// weight w; each weighted component is clipped to [0,1000]:
//
//	Create(a,b,c,w) = clip(a*w)*1e6 + clip(b*w)*1e3 + clip(c*w)
//
// The resulting value is itself clipped to [0, Required]. Required is the
// sentinel strength that marks a constraint as hard: the solver must
// satisfy it exactly (within epsilon), never trading it off against other
// constraints in the objective.
package strength
