package shape

import (
	"fmt"

	"github.com/kproskurin/hpmcshape/block"
)

// Sphere parameterizes a sphere by its diameter. The engine block carries
// the radius.
type Sphere struct {
	Diameter         float64
	IgnoreStatistics bool
}

// Kind reports KindSphere.
func (Sphere) Kind() Kind { return KindSphere }

// Build validates the diameter and returns the sphere block.
func (p Sphere) Build(_ Config) (block.Block, error) {
	if p.Diameter <= 0 {
		return nil, fmt.Errorf("%w: sphere diameter must be positive, got %g", ErrInvalidShape, p.Diameter)
	}

	return block.MakeSphere(p.Diameter/2, p.IgnoreStatistics), nil
}

func (p Sphere) String() string {
	return fmt.Sprintf("sphere(diameter = %g)", p.Diameter)
}
