package navmesh

// Named epsilons. Three distinct tolerances are in play, matched to the
// operation that needs them rather than collapsed into one magic number.
const (
	// epsPoint is used for point equality and on-segment collinearity.
	epsPoint = 1e-9

	// epsOrient is used for degenerate-triangle denominators and the
	// collinearity gate in signedArea2-based orientation decisions.
	epsOrient = 1e-10

	// epsParallel is used for segment-segment intersection parallelism.
	epsParallel = 1e-8
)
