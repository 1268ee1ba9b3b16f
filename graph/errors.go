package graph

import "errors"

// Sentinel errors for the graph package. Callers should branch on these
// with errors.Is; wrapped context is added with %w at the call site.
var (
	// ErrReservedZoneID indicates an attempt to register a real zone under
	// ExteriorID.
	ErrReservedZoneID = errors.New("graph: zone id -1 is reserved for the exterior sentinel")

	// ErrDuplicateZone indicates a zone id was registered more than once.
	ErrDuplicateZone = errors.New("graph: duplicate zone id")

	// ErrInvalidArea indicates a zone was given a non-positive area.
	ErrInvalidArea = errors.New("graph: zone area must be strictly positive")

	// ErrInvalidMass indicates a zone was given a negative mass.
	ErrInvalidMass = errors.New("graph: zone mass must be non-negative")

	// ErrUnknownZone indicates an operation referenced a zone id that was
	// never registered (and is not the exterior sentinel).
	ErrUnknownZone = errors.New("graph: zone not found")

	// ErrSelfNeighbour indicates a neighbour pair related a zone to itself.
	ErrSelfNeighbour = errors.New("graph: zone cannot neighbour itself")

	// ErrZoneAlreadyAssigned indicates Bind was called on a zone that
	// already belongs to a region.
	ErrZoneAlreadyAssigned = errors.New("graph: zone already assigned to a region")

	// ErrZoneNotBound indicates Unbind was called on a zone that does not
	// belong to the region it was asked to leave.
	ErrZoneNotBound = errors.New("graph: zone not bound to this region")

	// ErrSelfMerge indicates a region was asked to merge into itself.
	ErrSelfMerge = errors.New("graph: region cannot merge into itself")
)
