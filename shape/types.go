package shape

import (
	"errors"
	"fmt"

	"github.com/kproskurin/hpmcshape/block"
)

// Sentinel errors for shape validation.
var (
	// ErrInvalidShape indicates a structural violation in shape geometry.
	ErrInvalidShape = errors.New("shape: invalid shape parameters")
	// ErrCapacityExceeded indicates an entry count above a fixed capacity.
	ErrCapacityExceeded = errors.New("shape: capacity exceeded")
	// ErrLengthMismatch indicates paired attributes of unequal length.
	ErrLengthMismatch = errors.New("shape: paired attributes differ in length")
	// ErrUnknownAttr indicates an attribute outside a kind's fixed schema.
	ErrUnknownAttr = errors.New("shape: unknown attribute")
	// ErrMissingAttr indicates a required attribute absent from a loose map.
	ErrMissingAttr = errors.New("shape: missing required attribute")
	// ErrUnknownKind indicates a shape-kind name outside the closed set.
	ErrUnknownKind = errors.New("shape: unknown shape kind")
)

// CapacityError reports an entry count above a fixed capacity limit.
// It unwraps to ErrCapacityExceeded.
type CapacityError struct {
	Attr   string // offending attribute, e.g. "vertices"
	Limit  int    // configured capacity
	Actual int    // provided count
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("shape: %s expects up to %d entries, but %d are provided", e.Attr, e.Limit, e.Actual)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// LengthError reports two paired attributes of unequal length.
// It unwraps to ErrLengthMismatch.
type LengthError struct {
	Attr, Other       string
	AttrLen, OtherLen int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("shape: %s (length %d) and %s (length %d) must be equal length",
		e.Attr, e.AttrLen, e.Other, e.OtherLen)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// AttrError reports an attribute name outside a kind's fixed schema.
// It unwraps to ErrUnknownAttr.
type AttrError struct {
	Kind Kind
	Attr string
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("shape: %s has no attribute %q", e.Kind, e.Attr)
}

func (e *AttrError) Unwrap() error { return ErrUnknownAttr }

// Kind identifies one of the supported hard-particle shape kinds.
type Kind int

const (
	// KindSphere is a sphere given by its diameter.
	KindSphere Kind = iota
	// KindConvexPolygon is a planar convex polygon.
	KindConvexPolygon
	// KindConvexSpheropolygon is a convex polygon swept by a disk.
	KindConvexSpheropolygon
	// KindSimplePolygon is a planar, possibly non-convex, simple polygon.
	KindSimplePolygon
	// KindConvexPolyhedron is a convex polyhedron given by its vertices.
	KindConvexPolyhedron
	// KindConvexSpheropolyhedron is a convex polyhedron swept by a sphere.
	KindConvexSpheropolyhedron
	// KindPolyhedron is a general polyhedron with explicit face topology.
	KindPolyhedron
	// KindFacetedSphere is a sphere cut by half-space planes.
	KindFacetedSphere
	// KindSphinx is a signed composite of spheres (negative diameters cut).
	KindSphinx
	// KindEllipsoid is an ellipsoid given by three semi-axes.
	KindEllipsoid
	// KindSphereUnion is a rigid union of spheres.
	KindSphereUnion
)

var kindNames = [...]string{
	KindSphere:                 "sphere",
	KindConvexPolygon:          "convex_polygon",
	KindConvexSpheropolygon:    "convex_spheropolygon",
	KindSimplePolygon:          "simple_polygon",
	KindConvexPolyhedron:       "convex_polyhedron",
	KindConvexSpheropolyhedron: "convex_spheropolyhedron",
	KindPolyhedron:             "polyhedron",
	KindFacetedSphere:          "faceted_sphere",
	KindSphinx:                 "sphinx",
	KindEllipsoid:              "ellipsoid",
	KindSphereUnion:            "sphere_union",
}

// String returns the snake_case kind name used in shape files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a snake_case kind name back to its Kind.
// Returns ErrUnknownKind for anything outside the closed set.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// WarnFunc receives non-fatal diagnostics (printf-style).
type WarnFunc func(format string, args ...any)

// Config carries the engine-configuration constants shape validation runs
// against. Capacities size the opaque block layout and are fixed for the
// life of the configuration.
type Config struct {
	// MaxVerts bounds the vertex count of convex (sphero)polyhedra.
	MaxVerts int
	// MaxMembers bounds the member count of sphere unions.
	MaxMembers int
	// Warnf receives non-fatal diagnostics; nil discards them.
	Warnf WarnFunc
}

// DefaultConfig returns the stock capacities: MaxVerts=128, MaxMembers=16.
func DefaultConfig() Config {
	return Config{MaxVerts: 128, MaxMembers: 16}
}

func (c Config) warnf(format string, args ...any) {
	if c.Warnf != nil {
		c.Warnf(format, args...)
	}
}

// Params is the contract every shape kind implements.
//
// Build validates the structural invariants of the kind against cfg and, on
// success, returns the opaque parameter block for the engine. It never
// returns a partially built block: the result is valid or the error is
// non-nil. String renders a deterministic human-readable description for
// diagnostics; it is not a serialization format.
type Params interface {
	// Kind reports which shape kind this value parameterizes.
	Kind() Kind
	// Build validates the parameters and converts them to an engine block.
	Build(cfg Config) (block.Block, error)
	// String renders the parameters for diagnostics.
	String() string
}
