// Package hpmcshape is the shape-parameter layer for hard-particle Monte
// Carlo (HPMC) simulations: it stores, validates, and converts per-type
// shape descriptors into the opaque parameter blocks the simulation
// engine consumes.
//
// What lives where:
//
//	geom/      — canonical numeric types (Vec2, Vec3, Quat) and the
//	             normalizer turning loose numeric input into strict slices
//	block/     — the opaque parameter-block format and its per-shape
//	             factory functions
//	shape/     — one typed record per shape kind (sphere, polygons,
//	             polyhedra, faceted sphere, sphinx, ellipsoid, sphere
//	             union) with structural validation and block building
//	registry/  — the per-type registry: lazy record materialization,
//	             one-or-many Set, pre-run completeness checks, and the
//	             SimCore binding interface
//	shapefile/ — declarative YAML shape definitions applied to a registry
//
// The Monte Carlo engine itself — overlap checks, trial moves, cell
// lists — is a separate component; this module only configures it. All
// APIs here belong to the single-threaded setup phase and are not safe
// for concurrent mutation.
package hpmcshape
