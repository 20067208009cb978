// Package shapefile loads declarative YAML shape definitions and applies
// them to a registry.
//
// What:
//
//   - Load / LoadFile parse a document of the form:
//
//     kind: convex_polyhedron
//     shapes:
//     - types: [A, B]
//       vertices: [[...], ...]
//     - types: [C]
//       vertices: [[...], ...]
//
//     One file configures one registry, so one kind per file; each entry
//     applies one attribute set to one or more particle types.
//   - Apply pushes the entries through shape.FromAttrs and Registry.Set in
//     document order. The registry's semantics carry over unchanged: an
//     entry failing validation leaves every earlier entry (and earlier
//     types of the failing entry) committed.
//
// Errors:
//
//   - ErrNoKind: the document has no kind.
//   - ErrNoTypes: an entry lists no particle types.
//   - ErrKindMismatch: the file's kind differs from the registry's.
//   - Unknown kind names, unknown attributes, and structural violations
//     surface as the shape package's errors with the entry index attached.
package shapefile
