package shape

import (
	"fmt"

	"github.com/kproskurin/hpmcshape/block"
)

// Ellipsoid parameterizes an ellipsoid by its three semi-axes.
type Ellipsoid struct {
	A, B, C          float64
	IgnoreStatistics bool
}

// Kind reports KindEllipsoid.
func (Ellipsoid) Kind() Kind { return KindEllipsoid }

// Build validates the semi-axes and returns the ellipsoid block.
func (p Ellipsoid) Build(_ Config) (block.Block, error) {
	if p.A <= 0 || p.B <= 0 || p.C <= 0 {
		return nil, fmt.Errorf("%w: ellipsoid semi-axes must be positive, got (%g, %g, %g)",
			ErrInvalidShape, p.A, p.B, p.C)
	}

	return block.MakeEllipsoid(p.A, p.B, p.C, p.IgnoreStatistics), nil
}

func (p Ellipsoid) String() string {
	return fmt.Sprintf("ellipsoid(a = %g, b = %g, c = %g)", p.A, p.B, p.C)
}
