package shape

import (
	"fmt"

	"github.com/kproskurin/hpmcshape/block"
	"github.com/kproskurin/hpmcshape/geom"
)

// SphereUnion parameterizes a rigid union of spheres: member i has diameter
// Diameters[i] at Centers[i]. Orientations defaults to the identity
// quaternion per member, Overlap defaults to every member participating in
// overlap checks. The member count is bounded by Config.MaxMembers, which
// sizes the engine block. Colors is optional visualization metadata and
// never reaches the block.
type SphereUnion struct {
	Diameters        []float64
	Centers          []geom.Vec3
	Orientations     []geom.Quat
	Overlap          []bool
	Colors           []string
	IgnoreStatistics bool
}

// Kind reports KindSphereUnion.
func (SphereUnion) Kind() Kind { return KindSphereUnion }

// Build validates paired lengths and the capacity bound, fills in the
// orientation and overlap defaults, and returns the sized union block.
func (p SphereUnion) Build(cfg Config) (block.Block, error) {
	n := len(p.Diameters)
	if len(p.Centers) != n {
		return nil, &LengthError{
			Attr: "diameters", AttrLen: n,
			Other: "centers", OtherLen: len(p.Centers),
		}
	}
	if n > cfg.MaxMembers {
		return nil, &CapacityError{Attr: "members", Limit: cfg.MaxMembers, Actual: n}
	}

	orientations := p.Orientations
	if orientations == nil {
		orientations = make([]geom.Quat, n)
		for i := range orientations {
			orientations[i] = geom.Identity()
		}
	} else if len(orientations) != n {
		return nil, &LengthError{
			Attr: "orientations", AttrLen: len(orientations),
			Other: "diameters", OtherLen: n,
		}
	}

	overlap := p.Overlap
	if overlap == nil {
		overlap = make([]bool, n)
		for i := range overlap {
			overlap[i] = true
		}
	} else if len(overlap) != n {
		return nil, &LengthError{
			Attr: "overlap", AttrLen: len(overlap),
			Other: "diameters", OtherLen: n,
		}
	}

	members := make([]block.Sphere, n)
	for i, d := range p.Diameters {
		members[i] = block.MakeSphere(d/2, false)
	}

	return block.MakeSphereUnion(cfg.MaxMembers, members, p.Centers, orientations, overlap, p.IgnoreStatistics), nil
}

func (p SphereUnion) String() string {
	s := fmt.Sprintf("sphere union(diameters = %v, centers = %v, overlap = %v)",
		p.Diameters, p.Centers, p.Overlap)
	for i, d := range p.Diameters {
		s += fmt.Sprintf("\nsphere-%d(d = %g)", i, d)
	}

	return s
}
