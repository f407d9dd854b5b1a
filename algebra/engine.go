package algebra

// Engine is the full pairing-backend capability set a concrete curve
// must supply: scalar arithmetic (via the embedded Field), G1/G2 group
// operations, fixed- and variable-base multi-scalar multiplication, and
// a pairing-product check. S, P1, P2 stand in for the scalar field and
// the two pairing groups; GT never needs to be named because every
// equality this core checks is expressed as a pairing-product check
// (the same shape as gnark-crypto's PairingCheck), never as a bare GT
// comparison.
//
// A concrete curve lives in its own backend/<curve> package and
// implements Engine[S, P1, P2] against that curve's types; the asvc
// package never imports a curve directly.
type Engine[S, P1, P2 any] interface {
	Field[S]

	G1Identity() P1
	G1Generator() P1
	G1Add(a, b P1) P1
	G1Neg(a P1) P1
	G1ScalarMul(a P1, s S) P1

	// G1MultiExp computes the variable-base multi-scalar multiplication
	// sum_i scalars[i]*points[i]. len(scalars) must equal len(points).
	G1MultiExp(points []P1, scalars []S) (P1, error)

	// G1FixedBaseMultiExp returns [scalars[i]*base : i], one point per
	// scalar, by scalar-multiplying a shared base point by each scalar;
	// backends may use precomputed windowed tables for this, since
	// KeyGen is the only caller and the base is fixed across all calls
	// within one KeyGen invocation.
	G1FixedBaseMultiExp(base P1, scalars []S) ([]P1, error)

	G2Generator() P2
	G2Add(a, b P2) P2
	G2Neg(a P2) P2
	G2ScalarMul(a P2, s S) P2
	G2MultiExp(points []P2, scalars []S) (P2, error)
	G2FixedBaseMultiExp(base P2, scalars []S) ([]P2, error)

	// PairingCheck reports whether the product of pairings
	// prod_i e(a[i], b[i]) equals the identity in GT. len(a) must equal
	// len(b). A two-element call with a[1] negated is the idiomatic way
	// to check e(a[0],b[0]) == e(-a[1],b[1]) <=> e(a[0],b[0])*e(a[1],b[1])==1.
	PairingCheck(a []P1, b []P2) (bool, error)

	// NewDomain builds a Domain of the smallest size >= n the backend's
	// evaluation-domain construction supports.
	NewDomain(n uint64) (Domain[S], error)
}
