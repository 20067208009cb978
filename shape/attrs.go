package shape

import (
	"fmt"
	"slices"
	"sort"

	"github.com/kproskurin/hpmcshape/geom"
)

// FromAttrs builds a typed Params value for kind from a loose attribute
// map, e.g. one decoded from a shape file. Attribute names outside the
// kind's schema are rejected up front with an AttrError before any value is
// coerced; values are normalized through geom. FromAttrs does not run
// Build: structural validation still happens when the result is built.
func FromAttrs(kind Kind, raw map[string]any) (Params, error) {
	switch kind {
	case KindSphere:
		return sphereFromAttrs(raw)
	case KindConvexPolygon:
		return convexPolygonFromAttrs(raw)
	case KindConvexSpheropolygon:
		return convexSpheropolygonFromAttrs(raw)
	case KindSimplePolygon:
		return simplePolygonFromAttrs(raw)
	case KindConvexPolyhedron:
		return convexPolyhedronFromAttrs(raw)
	case KindConvexSpheropolyhedron:
		return convexSpheropolyhedronFromAttrs(raw)
	case KindPolyhedron:
		return polyhedronFromAttrs(raw)
	case KindFacetedSphere:
		return facetedSphereFromAttrs(raw)
	case KindSphinx:
		return sphinxFromAttrs(raw)
	case KindEllipsoid:
		return ellipsoidFromAttrs(raw)
	case KindSphereUnion:
		return sphereUnionFromAttrs(raw)
	default:
		return nil, fmt.Errorf("%w: kind(%d)", ErrUnknownKind, int(kind))
	}
}

func sphereFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindSphere, raw, "diameter", "ignore_statistics"); err != nil {
		return nil, err
	}
	d, err := reqFloat(KindSphere, raw, "diameter")
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return Sphere{Diameter: d, IgnoreStatistics: ign}, nil
}

func convexPolygonFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindConvexPolygon, raw, "vertices", "ignore_statistics"); err != nil {
		return nil, err
	}
	verts, err := reqVec2s(KindConvexPolygon, raw, "vertices")
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return ConvexPolygon{Vertices: verts, IgnoreStatistics: ign}, nil
}

func convexSpheropolygonFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindConvexSpheropolygon, raw, "vertices", "sweep_radius", "ignore_statistics"); err != nil {
		return nil, err
	}
	verts, err := reqVec2s(KindConvexSpheropolygon, raw, "vertices")
	if err != nil {
		return nil, err
	}
	sweep, err := optFloat(raw, "sweep_radius", 0)
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return ConvexSpheropolygon{Vertices: verts, SweepRadius: sweep, IgnoreStatistics: ign}, nil
}

func simplePolygonFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindSimplePolygon, raw, "vertices", "ignore_statistics"); err != nil {
		return nil, err
	}
	verts, err := reqVec2s(KindSimplePolygon, raw, "vertices")
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return SimplePolygon{Vertices: verts, IgnoreStatistics: ign}, nil
}

func convexPolyhedronFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindConvexPolyhedron, raw, "vertices", "ignore_statistics"); err != nil {
		return nil, err
	}
	verts, err := reqVec3s(KindConvexPolyhedron, raw, "vertices")
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return ConvexPolyhedron{Vertices: verts, IgnoreStatistics: ign}, nil
}

func convexSpheropolyhedronFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindConvexSpheropolyhedron, raw, "vertices", "sweep_radius", "ignore_statistics"); err != nil {
		return nil, err
	}
	verts, err := reqVec3s(KindConvexSpheropolyhedron, raw, "vertices")
	if err != nil {
		return nil, err
	}
	sweep, err := optFloat(raw, "sweep_radius", 0)
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return ConvexSpheropolyhedron{Vertices: verts, SweepRadius: sweep, IgnoreStatistics: ign}, nil
}

func polyhedronFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindPolyhedron, raw, "vertices", "faces", "sweep_radius", "ignore_statistics"); err != nil {
		return nil, err
	}
	verts, err := reqVec3s(KindPolyhedron, raw, "vertices")
	if err != nil {
		return nil, err
	}
	faces, err := reqFaces(KindPolyhedron, raw)
	if err != nil {
		return nil, err
	}
	sweep, err := optFloat(raw, "sweep_radius", 0)
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return Polyhedron{Vertices: verts, Faces: faces, SweepRadius: sweep, IgnoreStatistics: ign}, nil
}

func facetedSphereFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindFacetedSphere, raw,
		"normals", "offsets", "vertices", "diameter", "origin", "ignore_statistics"); err != nil {
		return nil, err
	}
	normals, err := reqVec3s(KindFacetedSphere, raw, "normals")
	if err != nil {
		return nil, err
	}
	offsets, err := reqFloats(KindFacetedSphere, raw, "offsets")
	if err != nil {
		return nil, err
	}
	verts, err := reqVec3s(KindFacetedSphere, raw, "vertices")
	if err != nil {
		return nil, err
	}
	d, err := reqFloat(KindFacetedSphere, raw, "diameter")
	if err != nil {
		return nil, err
	}
	origin, err := optVec3(raw, "origin", geom.Vec3{})
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return FacetedSphere{
		Normals: normals, Offsets: offsets, Vertices: verts,
		Diameter: d, Origin: origin, IgnoreStatistics: ign,
	}, nil
}

func sphinxFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindSphinx, raw, "diameters", "centers", "colors", "ignore_statistics"); err != nil {
		return nil, err
	}
	diameters, err := reqFloats(KindSphinx, raw, "diameters")
	if err != nil {
		return nil, err
	}
	centers, err := reqVec3s(KindSphinx, raw, "centers")
	if err != nil {
		return nil, err
	}
	colors, err := optStrings(raw, "colors")
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return Sphinx{Diameters: diameters, Centers: centers, Colors: colors, IgnoreStatistics: ign}, nil
}

func ellipsoidFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindEllipsoid, raw, "a", "b", "c", "ignore_statistics"); err != nil {
		return nil, err
	}
	a, err := reqFloat(KindEllipsoid, raw, "a")
	if err != nil {
		return nil, err
	}
	b, err := reqFloat(KindEllipsoid, raw, "b")
	if err != nil {
		return nil, err
	}
	c, err := reqFloat(KindEllipsoid, raw, "c")
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return Ellipsoid{A: a, B: b, C: c, IgnoreStatistics: ign}, nil
}

func sphereUnionFromAttrs(raw map[string]any) (Params, error) {
	if err := checkSchema(KindSphereUnion, raw,
		"diameters", "centers", "orientations", "overlap", "colors", "ignore_statistics"); err != nil {
		return nil, err
	}
	diameters, err := reqFloats(KindSphereUnion, raw, "diameters")
	if err != nil {
		return nil, err
	}
	centers, err := reqVec3s(KindSphereUnion, raw, "centers")
	if err != nil {
		return nil, err
	}
	var orientations []geom.Quat
	if v, ok := raw["orientations"]; ok {
		if orientations, err = geom.Quats(v); err != nil {
			return nil, attrValueErr("orientations", err)
		}
	}
	var overlap []bool
	if v, ok := raw["overlap"]; ok {
		if overlap, err = geom.Bools(v); err != nil {
			return nil, attrValueErr("overlap", err)
		}
	}
	colors, err := optStrings(raw, "colors")
	if err != nil {
		return nil, err
	}
	ign, err := optBool(raw, "ignore_statistics")
	if err != nil {
		return nil, err
	}

	return SphereUnion{
		Diameters: diameters, Centers: centers,
		Orientations: orientations, Overlap: overlap,
		Colors: colors, IgnoreStatistics: ign,
	}, nil
}

// Metadata renders a record's schema keys and current values as a plain
// map, for introspection and metadata dumps. Keys match the attribute names
// FromAttrs accepts.
func Metadata(p Params) map[string]any {
	m := map[string]any{"ignore_statistics": false}
	switch s := p.(type) {
	case Sphere:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["diameter"] = s.Diameter
	case ConvexPolygon:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["vertices"] = s.Vertices
	case ConvexSpheropolygon:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["vertices"] = s.Vertices
		m["sweep_radius"] = s.SweepRadius
	case SimplePolygon:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["vertices"] = s.Vertices
	case ConvexPolyhedron:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["vertices"] = s.Vertices
	case ConvexSpheropolyhedron:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["vertices"] = s.Vertices
		m["sweep_radius"] = s.SweepRadius
	case Polyhedron:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["vertices"] = s.Vertices
		m["faces"] = s.Faces
		m["sweep_radius"] = s.SweepRadius
	case FacetedSphere:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["vertices"] = s.Vertices
		m["normals"] = s.Normals
		m["offsets"] = s.Offsets
		m["diameter"] = s.Diameter
		m["origin"] = s.Origin
	case Sphinx:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["diameters"] = s.Diameters
		m["centers"] = s.Centers
		m["colors"] = s.Colors
	case Ellipsoid:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["a"] = s.A
		m["b"] = s.B
		m["c"] = s.C
	case SphereUnion:
		m["ignore_statistics"] = s.IgnoreStatistics
		m["diameters"] = s.Diameters
		m["centers"] = s.Centers
		m["orientations"] = s.Orientations
		m["overlap"] = s.Overlap
		m["colors"] = s.Colors
	}

	return m
}

//----------------------------------------------------------------------------//
// Attribute helpers
//----------------------------------------------------------------------------//

// checkSchema rejects any attribute name outside the allowed set, before
// any value is coerced. Keys are checked in sorted order so the reported
// violation is deterministic.
func checkSchema(kind Kind, raw map[string]any, allowed ...string) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !slices.Contains(allowed, k) {
			return &AttrError{Kind: kind, Attr: k}
		}
	}

	return nil
}

func attrValueErr(key string, err error) error {
	return fmt.Errorf("shape: attribute %q: %w", key, err)
}

func reqFloat(kind Kind, raw map[string]any, key string) (float64, error) {
	v, ok := raw[key]
	if !ok {
		return 0, fmt.Errorf("%w %q for %s", ErrMissingAttr, key, kind)
	}
	f, err := geom.Float(v)
	if err != nil {
		return 0, attrValueErr(key, err)
	}

	return f, nil
}

func optFloat(raw map[string]any, key string, def float64) (float64, error) {
	v, ok := raw[key]
	if !ok {
		return def, nil
	}
	f, err := geom.Float(v)
	if err != nil {
		return 0, attrValueErr(key, err)
	}

	return f, nil
}

func optBool(raw map[string]any, key string) (bool, error) {
	v, ok := raw[key]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("shape: attribute %q: got %T, want bool", key, v)
	}

	return b, nil
}

func reqFloats(kind Kind, raw map[string]any, key string) ([]float64, error) {
	v, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("%w %q for %s", ErrMissingAttr, key, kind)
	}
	fs, err := geom.Floats(v)
	if err != nil {
		return nil, attrValueErr(key, err)
	}

	return fs, nil
}

func reqVec2s(kind Kind, raw map[string]any, key string) ([]geom.Vec2, error) {
	v, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("%w %q for %s", ErrMissingAttr, key, kind)
	}
	vs, err := geom.Vec2s(v)
	if err != nil {
		return nil, attrValueErr(key, err)
	}

	return vs, nil
}

func reqVec3s(kind Kind, raw map[string]any, key string) ([]geom.Vec3, error) {
	v, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("%w %q for %s", ErrMissingAttr, key, kind)
	}
	vs, err := geom.Vec3s(v)
	if err != nil {
		return nil, attrValueErr(key, err)
	}

	return vs, nil
}

func optVec3(raw map[string]any, key string, def geom.Vec3) (geom.Vec3, error) {
	v, ok := raw[key]
	if !ok {
		return def, nil
	}
	t, err := geom.Vec3Of(v)
	if err != nil {
		return geom.Vec3{}, attrValueErr(key, err)
	}

	return t, nil
}

func reqFaces(kind Kind, raw map[string]any) ([][]int, error) {
	v, ok := raw["faces"]
	if !ok {
		return nil, fmt.Errorf("%w %q for %s", ErrMissingAttr, "faces", kind)
	}
	switch fs := v.(type) {
	case [][]int:
		out := make([][]int, len(fs))
		for i := range fs {
			out[i] = slices.Clone(fs[i])
		}

		return out, nil
	case []any:
		out := make([][]int, len(fs))
		for i, e := range fs {
			ids, err := geom.Ints(e)
			if err != nil {
				return nil, attrValueErr("faces", fmt.Errorf("face %d: %w", i, err))
			}
			out[i] = ids
		}

		return out, nil
	default:
		return nil, attrValueErr("faces", fmt.Errorf("%w: %T", geom.ErrNotSequence, v))
	}
}

func optStrings(raw map[string]any, key string) ([]string, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	switch ss := v.(type) {
	case []string:
		return slices.Clone(ss), nil
	case []any:
		out := make([]string, len(ss))
		for i, e := range ss {
			s, ok := e.(string)
			if !ok {
				return nil, attrValueErr(key, fmt.Errorf("element %d: got %T, want string", i, e))
			}
			out[i] = s
		}

		return out, nil
	default:
		return nil, attrValueErr(key, fmt.Errorf("%w: %T", geom.ErrNotSequence, v))
	}
}
