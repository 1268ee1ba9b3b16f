package graph

// ZoneID uniquely identifies a Zone within a Graph. It is the zone's
// original real-world key and is never reassigned.
type ZoneID int64

// ExteriorID is the reserved id of the exterior sentinel: the pseudo-zone
// representing everything outside the studied area. Real zones must not
// use it.
const ExteriorID ZoneID = -1

// RegionID addresses a Region inside a Graph's region arena. It is a
// stable index, never reused once allocated.
type RegionID int

// NoRegion marks a zone as currently unassigned.
const NoRegion RegionID = -1

// DensityCoef is the fixed scaling factor applied to mass/area ratios so
// that density values are comparable to thresholds expressed in the same
// units as the source data (mass per million area units, conventionally).
const DensityCoef = 1_000_000
