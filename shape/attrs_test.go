package shape_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kproskurin/hpmcshape/geom"
	"github.com/kproskurin/hpmcshape/shape"
)

// TestFromAttrs_Sphere converts a loose map into typed sphere params.
func TestFromAttrs_Sphere(t *testing.T) {
	p, err := shape.FromAttrs(shape.KindSphere, map[string]any{"diameter": 1})
	require.NoError(t, err)
	require.Equal(t, shape.Sphere{Diameter: 1.0}, p)
}

// TestFromAttrs_UnknownAttr fails fast before any value is coerced, naming
// the kind and the offending attribute.
func TestFromAttrs_UnknownAttr(t *testing.T) {
	_, err := shape.FromAttrs(shape.KindSphere, map[string]any{
		"diameter": "not even a number",
		"radius":   0.5,
	})
	require.ErrorIs(t, err, shape.ErrUnknownAttr)
	var attrErr *shape.AttrError
	require.ErrorAs(t, err, &attrErr)
	require.Equal(t, shape.KindSphere, attrErr.Kind)
	require.Equal(t, "radius", attrErr.Attr)
}

// TestFromAttrs_MissingAttr reports absent required attributes.
func TestFromAttrs_MissingAttr(t *testing.T) {
	_, err := shape.FromAttrs(shape.KindEllipsoid, map[string]any{"a": 1, "b": 2})
	require.ErrorIs(t, err, shape.ErrMissingAttr)
}

// TestFromAttrs_Polyhedron coerces nested loose input, the way a YAML
// decoder delivers it.
func TestFromAttrs_Polyhedron(t *testing.T) {
	raw := map[string]any{
		"vertices": []any{
			[]any{0, 0, 0}, []any{1, 0, 0}, []any{1, 1, 0}, []any{0, 1, 0},
		},
		"faces":        []any{[]any{0, 1, 2}, []any{0, 2, 3}},
		"sweep_radius": 0.1,
	}
	p, err := shape.FromAttrs(shape.KindPolyhedron, raw)
	require.NoError(t, err)
	poly := p.(shape.Polyhedron)
	require.Equal(t, []geom.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, poly.Vertices)
	require.Equal(t, [][]int{{0, 1, 2}, {0, 2, 3}}, poly.Faces)
	require.Equal(t, 0.1, poly.SweepRadius)
}

// TestFromAttrs_SphereUnion covers optional attributes and flag coercion.
func TestFromAttrs_SphereUnion(t *testing.T) {
	raw := map[string]any{
		"diameters": []any{1, 0.5},
		"centers":   []any{[]any{0, 0, 0}, []any{0.75, 0, 0}},
		"overlap":   []any{1, 0},
		"colors":    []any{"ff0000", "0000ff"},
	}
	p, err := shape.FromAttrs(shape.KindSphereUnion, raw)
	require.NoError(t, err)
	u := p.(shape.SphereUnion)
	require.Equal(t, []bool{true, false}, u.Overlap)
	require.Equal(t, []string{"ff0000", "0000ff"}, u.Colors)
	require.Nil(t, u.Orientations, "orientations default is resolved at Build time")
}

// TestFromAttrs_BadValue surfaces normalizer failures with the attribute
// name attached.
func TestFromAttrs_BadValue(t *testing.T) {
	_, err := shape.FromAttrs(shape.KindConvexPolygon, map[string]any{
		"vertices": []any{[]any{0, 0}, []any{1, "x"}},
	})
	require.ErrorIs(t, err, geom.ErrNonNumeric)
	require.ErrorContains(t, err, "vertices")
}

// TestMetadata_Sphinx checks the introspection map for a composite kind.
func TestMetadata_Sphinx(t *testing.T) {
	p := shape.Sphinx{
		Diameters: []float64{1, -0.25},
		Centers:   []geom.Vec3{{0, 0, 0}, {0.6, 0, 0}},
		Colors:    []string{"ffcc00", "222222"},
	}
	m := shape.Metadata(p)
	require.Equal(t, []float64{1, -0.25}, m["diameters"])
	require.Equal(t, []string{"ffcc00", "222222"}, m["colors"])
	require.Equal(t, false, m["ignore_statistics"])
	require.NotContains(t, m, "diameter")
}
