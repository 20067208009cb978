// Package geom normalizes loosely-typed numeric input into the canonical
// fixed-precision values the shape layer works with.
//
// What:
//
//   - Canonical value types: Vec2, Vec3 (positions, normals) and Quat
//     (scalar-first orientation quaternions).
//   - Normalizers: Float, Floats, Ints, Bools, Vec2s, Vec3s, Vec3Of, Quats.
//     Each accepts already-canonical input, plain Go numeric slices, or the
//     []any trees produced by decoders such as yaml.v3, and returns a fresh
//     canonical slice.
//
// Why:
//
//   - Shape records must never touch heterogeneous raw input; all "loose
//     sequence → strict array" coercion is concentrated here, so a record
//     only ever sees []float64, []Vec3, and friends.
//   - Normalization is idempotent: feeding a normalizer its own output
//     yields an equal value.
//
// Errors:
//
//   - ErrNonNumeric: an entry cannot be coerced to a number.
//   - ErrNotSequence: a sequence was expected, a scalar (or nil) was given.
//   - ErrArity: a fixed-width tuple has the wrong number of components.
//
// Complexity: every normalizer is O(n) over the input length and allocates
// exactly the output slice.
package geom
