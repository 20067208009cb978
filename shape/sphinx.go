package shape

import (
	"fmt"

	"github.com/kproskurin/hpmcshape/block"
	"github.com/kproskurin/hpmcshape/geom"
)

// Sphinx parameterizes a signed composite of spheres: Diameters[i] places a
// sphere at Centers[i], and a negative diameter subtracts volume instead of
// adding it. Colors is optional visualization metadata and never reaches
// the engine block.
type Sphinx struct {
	Diameters        []float64
	Centers          []geom.Vec3
	Colors           []string
	IgnoreStatistics bool
}

// Kind reports KindSphinx.
func (Sphinx) Kind() Kind { return KindSphinx }

// Build validates one center per diameter and returns the sphinx block.
func (p Sphinx) Build(_ Config) (block.Block, error) {
	if len(p.Diameters) != len(p.Centers) {
		return nil, &LengthError{
			Attr: "diameters", AttrLen: len(p.Diameters),
			Other: "centers", OtherLen: len(p.Centers),
		}
	}

	return block.MakeSphinx(p.Diameters, p.Centers, p.IgnoreStatistics), nil
}

func (p Sphinx) String() string {
	return fmt.Sprintf("sphinx(centers = %v, diameters = %v)", p.Centers, p.Diameters)
}
