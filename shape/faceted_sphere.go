package shape

import (
	"fmt"

	"github.com/kproskurin/hpmcshape/block"
	"github.com/kproskurin/hpmcshape/geom"
)

// FacetedSphere parameterizes a sphere of Diameter centered at Origin and
// cut by half-space planes: Normals[i] and Offsets[i] define plane i.
// Vertices describe the bounding polytope of the cut region before
// faceting.
type FacetedSphere struct {
	Normals          []geom.Vec3
	Offsets          []float64
	Vertices         []geom.Vec3
	Diameter         float64
	Origin           geom.Vec3
	IgnoreStatistics bool
}

// Kind reports KindFacetedSphere.
func (FacetedSphere) Kind() Kind { return KindFacetedSphere }

// Build validates one offset per cutting plane and returns the
// faceted-sphere block.
func (p FacetedSphere) Build(_ Config) (block.Block, error) {
	if len(p.Normals) != len(p.Offsets) {
		return nil, &LengthError{
			Attr: "normals", AttrLen: len(p.Normals),
			Other: "offsets", OtherLen: len(p.Offsets),
		}
	}

	return block.MakeFacetedSphere(p.Normals, p.Offsets, p.Vertices, p.Diameter, p.Origin, p.IgnoreStatistics), nil
}

func (p FacetedSphere) String() string {
	return fmt.Sprintf("faceted sphere(vertices = %v, normals = %v, offsets = %v)",
		p.Vertices, p.Normals, p.Offsets)
}
