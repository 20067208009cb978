// Package shape defines one typed parameter record per hard-particle shape
// kind, the structural validation each kind enforces, and the conversion of
// a validated record into the engine's opaque parameter block.
//
// What:
//
//   - Kind: the closed set of eleven shape kinds, with ParseKind/String
//     round-tripping the snake_case names used in shape files.
//   - Params: the contract every kind implements — Kind(), Build(Config)
//     producing a block.Block, and String() for diagnostics. Each kind is a
//     plain struct whose fields are its entire schema; there is no way to
//     attach an attribute a kind does not declare.
//   - Config: the immutable capacities (MaxVerts, MaxMembers) and the
//     warning sink, fixed when the owning engine configuration is built.
//   - FromAttrs: loose map[string]any → typed Params, rejecting unknown
//     attribute names outright and coercing values through geom.
//
// Why:
//
//   - Build validates and converts in one step: it either returns a block
//     the engine can consume as-is, or an error, and never leaves a half
//     -built block behind.
//   - Capacity-limited kinds (convex polyhedra, sphere unions) check their
//     counts against Config before the sized block factory runs, so the
//     factory preconditions always hold.
//
// Errors:
//
//   - ErrInvalidShape: a structural violation (non-positive diameter, too
//     few polygon vertices, bad face index, negative sweep radius where
//     that is fatal).
//   - ErrCapacityExceeded / CapacityError: an entry count above a fixed
//     capacity; the error carries both the limit and the actual count.
//   - ErrLengthMismatch / LengthError: paired attributes of unequal length.
//   - ErrUnknownAttr / AttrError: an attribute outside a kind's schema — a
//     programming error, rejected before any value is looked at.
//   - ErrMissingAttr: a required attribute absent from a loose map.
//   - ErrUnknownKind: ParseKind given a name outside the closed set.
//
// A negative sweep radius on a general polyhedron is the one non-fatal
// case: construction proceeds and the Config warning sink is told.
package shape
