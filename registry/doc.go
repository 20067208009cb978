// Package registry maps particle-type names to their shape-parameter
// records and pushes finalized parameter blocks into the simulation core.
//
// What:
//
//   - SimCore: the binding interface the engine supplies — the declared
//     type names (position is the type index) and the block sink.
//   - Registry: per-engine-configuration state. Every registry is fixed to
//     one shape kind; records for declared types materialize lazily on
//     first lookup with no parameters set.
//   - Record: one type's state — name, dense type index, kind, the last
//     committed parameters, and whether any assignment has succeeded.
//   - MemCore: an in-memory SimCore used by tests and offline validation.
//
// Why:
//
//   - Set applies one parameter set to one or many types in order,
//     validating and building each block before the hand-off; a block is
//     pushed whole or not at all. A failure mid-sequence leaves earlier
//     types committed — there is no transactional batch in the engine, so
//     none is simulated here.
//   - Verify is the pre-run gate: every declared type must have had a
//     successful Set before the simulation may start.
//
// Errors:
//
//   - ErrUnknownType: a name outside the declared type set.
//   - ErrInternalConsistency: lazy materialization failed to produce a
//     record for a declared type (registry/engine desync); fatal.
//   - ErrKindMismatch: parameters of a different kind than the registry.
//   - ErrTypeNotSet: Verify found declared types with no parameters.
//
// The registry is configuration-phase state: calls must be serialized by
// the caller, and nothing here blocks or performs I/O.
package registry
