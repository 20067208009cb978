package registry

import (
	"errors"
	"fmt"

	"github.com/kproskurin/hpmcshape/block"
	"github.com/kproskurin/hpmcshape/shape"
)

// Sentinel errors for registry operations.
var (
	// ErrUnknownType indicates a name outside the declared particle types.
	ErrUnknownType = errors.New("registry: unknown particle type")
	// ErrInternalConsistency indicates materialization failed to produce a
	// record for a declared type; the registry and engine have desynced.
	ErrInternalConsistency = errors.New("registry: could not materialize record for declared type")
	// ErrKindMismatch indicates parameters of a different shape kind than
	// the registry was built for.
	ErrKindMismatch = errors.New("registry: shape kind mismatch")
	// ErrTypeNotSet indicates declared types without parameters at Verify.
	ErrTypeNotSet = errors.New("registry: particle type has no shape parameters set")
)

// SimCore is the simulation-core binding the registry talks to. The engine
// owns the declared type names and the storage for finalized blocks.
type SimCore interface {
	// TypeNames returns the declared particle-type names. A name's position
	// is its dense type index; indices are contiguous over [0, len) and
	// correspond 1:1 with declared types.
	TypeNames() []string
	// SetParam stores a finalized parameter block under a type index. It is
	// assumed to succeed for any well-formed block; schema problems must be
	// caught before this call.
	SetParam(typeIndex int, b block.Block)
}

// Options configures a Registry.
type Options struct {
	// MaxVerts bounds convex (sphero)polyhedron vertex counts. Fixed for
	// the life of the configuration: it sizes the engine block layout.
	MaxVerts int
	// MaxMembers bounds sphere-union member counts. Also fixed.
	MaxMembers int
	// Warnf receives non-fatal diagnostics; nil discards them.
	Warnf shape.WarnFunc
}

// DefaultOptions returns the stock capacities: MaxVerts=128, MaxMembers=16.
func DefaultOptions() Options {
	return Options{MaxVerts: 128, MaxMembers: 16}
}

// Record is the shape-parameter state of one particle type. Records are
// created by their registry and owned by it exclusively.
type Record struct {
	name   string
	index  int
	kind   shape.Kind
	params shape.Params
	isSet  bool
}

// Name returns the particle-type name.
func (r *Record) Name() string { return r.name }

// Index returns the dense type index the engine keys blocks by.
func (r *Record) Index() int { return r.index }

// Kind returns the shape kind this record holds parameters for.
func (r *Record) Kind() shape.Kind { return r.kind }

// IsSet reports whether at least one validated assignment has succeeded.
// Unset records block simulation start via Registry.Verify.
func (r *Record) IsSet() bool { return r.isSet }

// Params returns the last committed parameters, or nil before the first
// successful Set.
func (r *Record) Params() shape.Params { return r.params }

// Metadata returns the record's attribute values keyed by attribute name,
// or nil before the first successful Set.
func (r *Record) Metadata() map[string]any {
	if !r.isSet {
		return nil
	}

	return shape.Metadata(r.params)
}

// String renders the record for diagnostics.
func (r *Record) String() string {
	if !r.isSet {
		return fmt.Sprintf("%s(unset)", r.kind)
	}

	return r.params.String()
}
