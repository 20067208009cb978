package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kproskurin/hpmcshape/shape"
)

// Registry owns the name → record mapping for one engine configuration.
// Every registry is fixed to a single shape kind: the engine's integrator
// decides the kind, the registry decides the per-type parameters.
type Registry struct {
	core    SimCore
	kind    shape.Kind
	cfg     shape.Config
	records map[string]*Record
}

// New builds a registry bound to core for the given shape kind. The
// capacities in opts are copied into the validation config and cannot
// change afterwards.
func New(core SimCore, kind shape.Kind, opts Options) *Registry {
	return &Registry{
		core: core,
		kind: kind,
		cfg: shape.Config{
			MaxVerts:   opts.MaxVerts,
			MaxMembers: opts.MaxMembers,
			Warnf:      opts.Warnf,
		},
		records: make(map[string]*Record),
	}
}

// Kind returns the shape kind this registry holds records for.
func (r *Registry) Kind() shape.Kind { return r.kind }

// Resolve returns the record for a declared particle type, materializing
// default (unset) records for every declared type on first miss.
// Returns ErrUnknownType for names the engine has not declared, and
// ErrInternalConsistency if materialization still yields no record.
// Complexity: O(t) over the declared type count.
func (r *Registry) Resolve(name string) (*Record, error) {
	names := r.core.TypeNames()
	if !slices.Contains(names, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	rec, ok := r.records[name]
	if !ok {
		r.materialize(names)
		if rec, ok = r.records[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrInternalConsistency, name)
		}
	}

	return rec, nil
}

// Set validates p once per listed type, commits the parameters, and pushes
// the finalized block to the engine keyed by the type index. Types are
// processed in argument order; on failure, earlier types in the same call
// stay committed — the engine has no transactional batch and the registry
// does not pretend otherwise.
func (r *Registry) Set(p shape.Params, typeNames ...string) error {
	if p.Kind() != r.kind {
		return fmt.Errorf("%w: got %s, registry holds %s", ErrKindMismatch, p.Kind(), r.kind)
	}
	for _, name := range typeNames {
		rec, err := r.Resolve(name)
		if err != nil {
			return err
		}
		b, err := p.Build(r.cfg)
		if err != nil {
			return fmt.Errorf("registry: type %q: %w", name, err)
		}
		rec.params = p
		rec.isSet = true
		r.core.SetParam(rec.index, b)
	}

	return nil
}

// Verify is the pre-run gate: it fails with ErrTypeNotSet while any
// declared type still has no committed parameters, naming every offender.
func (r *Registry) Verify() error {
	names := r.core.TypeNames()
	r.materialize(names)
	var unset []string
	for _, n := range names {
		if !r.records[n].isSet {
			unset = append(unset, n)
		}
	}
	if len(unset) > 0 {
		return fmt.Errorf("%w: %s", ErrTypeNotSet, strings.Join(unset, ", "))
	}

	return nil
}

// materialize creates an unset record for every declared type that lacks
// one and refreshes the dense indices of existing records, keeping them 1:1
// with the engine's current declaration order.
func (r *Registry) materialize(names []string) {
	for i, n := range names {
		if rec, ok := r.records[n]; ok {
			rec.index = i
			continue
		}
		r.records[n] = &Record{name: n, index: i, kind: r.kind}
	}
}
