package shapefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kproskurin/hpmcshape/registry"
	"github.com/kproskurin/hpmcshape/shape"
)

// Sentinel errors for shape files.
var (
	// ErrNoKind indicates a document without a kind.
	ErrNoKind = errors.New("shapefile: missing kind")
	// ErrNoTypes indicates an entry listing no particle types.
	ErrNoTypes = errors.New("shapefile: entry lists no types")
	// ErrKindMismatch indicates a file kind differing from the registry's.
	ErrKindMismatch = errors.New("shapefile: file kind does not match registry kind")
)

// Entry is one attribute set applied to one or more particle types.
// All keys besides "types" are shape attributes, named as in
// shape.FromAttrs.
type Entry struct {
	Types []string       `yaml:"types"`
	Attrs map[string]any `yaml:",inline"`
}

// File is a parsed shape-definition document.
type File struct {
	Kind    shape.Kind
	Entries []Entry
}

type document struct {
	Kind   string  `yaml:"kind"`
	Shapes []Entry `yaml:"shapes"`
}

// Load parses a shape-definition document. Entry order is preserved.
func Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("shapefile: %w", err)
	}
	var doc document
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("shapefile: %w", err)
	}
	if doc.Kind == "" {
		return nil, ErrNoKind
	}
	kind, err := shape.ParseKind(doc.Kind)
	if err != nil {
		return nil, err
	}
	for i, e := range doc.Shapes {
		if len(e.Types) == 0 {
			return nil, fmt.Errorf("%w: entry %d", ErrNoTypes, i)
		}
	}

	return &File{Kind: kind, Entries: doc.Shapes}, nil
}

// LoadFile parses the shape-definition document at path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shapefile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Apply converts every entry to typed parameters and commits it to reg in
// document order. Partial-failure semantics are Registry.Set's: earlier
// entries stay committed when a later one fails.
func (f *File) Apply(reg *registry.Registry) error {
	if f.Kind != reg.Kind() {
		return fmt.Errorf("%w: file holds %s, registry holds %s", ErrKindMismatch, f.Kind, reg.Kind())
	}
	for i, e := range f.Entries {
		p, err := shape.FromAttrs(f.Kind, e.Attrs)
		if err != nil {
			return fmt.Errorf("shapefile: entry %d: %w", i, err)
		}
		if err = reg.Set(p, e.Types...); err != nil {
			return fmt.Errorf("shapefile: entry %d: %w", i, err)
		}
	}

	return nil
}
