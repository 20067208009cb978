package geom

import "errors"

// Sentinel errors for normalization.
var (
	// ErrNonNumeric indicates an entry that cannot be coerced to a float64.
	ErrNonNumeric = errors.New("geom: value is not numeric")
	// ErrNotSequence indicates a scalar (or nil) where a sequence was expected.
	ErrNotSequence = errors.New("geom: value is not a sequence")
	// ErrArity indicates a fixed-width tuple with the wrong component count.
	ErrArity = errors.New("geom: wrong tuple width")
)

// Vec2 is a point or direction in the plane.
type Vec2 [2]float64

// Vec3 is a point or direction in space.
type Vec3 [3]float64

// Quat is an orientation quaternion in scalar-first order (s, x, y, z).
type Quat [4]float64

// Identity returns the identity orientation (1, 0, 0, 0).
func Identity() Quat { return Quat{1, 0, 0, 0} }
