// errors.go — sentinel errors for the regionalize package, following the
// same policy as graph/errors.go and loader/errors.go: exported sentinels
// only, checked with errors.Is, wrapped with %w at call sites.

package regionalize

import "errors"

// ErrNegativeThreshold indicates a negative ThresholdDensity was supplied.
var ErrNegativeThreshold = errors.New("regionalize: threshold density must be non-negative")

// ErrNegativeMinPopulation indicates a negative MinPopulation was supplied.
var ErrNegativeMinPopulation = errors.New("regionalize: minimum population must be non-negative")
