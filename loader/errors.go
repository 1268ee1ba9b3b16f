// errors.go — sentinel errors for the loader package.
//
// Error policy: only package-level sentinels are exposed; callers branch on
// them with errors.Is. Call sites attach context with %w.

package loader

import "errors"

// ErrExteriorNotAllowed indicates a neighbour pair referenced the exterior
// sentinel (-1) while Load was called with allowExterior set to false.
var ErrExteriorNotAllowed = errors.New("loader: exterior contact not allowed")

// ErrNoZones indicates an empty zone record set was supplied.
var ErrNoZones = errors.New("loader: no zone records supplied")
