package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kproskurin/hpmcshape/block"
	"github.com/kproskurin/hpmcshape/geom"
)

// TestMakePolyVerts3D_Padding verifies that the sized block pads its vertex
// array to capacity and records the live count.
func TestMakePolyVerts3D_Padding(t *testing.T) {
	verts := []geom.Vec3{{1, 0, 0}, {0, 1, 0}}
	b := block.MakePolyVerts3D(4, verts, 0.5, false)

	require.Equal(t, 2, b.N)
	require.Equal(t, 4, b.Cap)
	require.Len(t, b.Verts, 4)
	require.Equal(t, verts[0], b.Verts[0])
	require.Equal(t, geom.Vec3{}, b.Verts[3], "padding must be zeroed")
	require.Equal(t, 0.5, b.SweepRadius)
}

// TestMakePolyVerts3D_OverCapacity verifies the factory precondition.
func TestMakePolyVerts3D_OverCapacity(t *testing.T) {
	verts := []geom.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	require.Panics(t, func() { block.MakePolyVerts3D(2, verts, 0, false) })
}

// TestMakeSphereUnion_Padding verifies sized union layout.
func TestMakeSphereUnion_Padding(t *testing.T) {
	members := []block.Sphere{{Radius: 0.5}, {Radius: 0.25}}
	centers := []geom.Vec3{{0, 0, 0}, {1, 0, 0}}
	orients := []geom.Quat{geom.Identity(), geom.Identity()}
	overlap := []bool{true, true}

	b := block.MakeSphereUnion(8, members, centers, orients, overlap, true)
	require.Equal(t, 2, b.N)
	require.Equal(t, 8, b.Cap)
	require.Len(t, b.Members, 8)
	require.Len(t, b.Overlap, 8)
	require.True(t, b.IgnoreStatistics)
	require.False(t, b.Overlap[7], "padding members must not participate in overlap checks")
}

// TestMakeSphereUnion_Ragged verifies the equal-length precondition.
func TestMakeSphereUnion_Ragged(t *testing.T) {
	require.Panics(t, func() {
		block.MakeSphereUnion(4,
			[]block.Sphere{{Radius: 0.5}},
			[]geom.Vec3{{0, 0, 0}, {1, 0, 0}},
			[]geom.Quat{geom.Identity()},
			[]bool{true},
			false)
	})
}

// TestBlocksDoNotAliasInput guards the engine hand-off: a caller mutating its
// own slices after Make* must not reach into the block.
func TestBlocksDoNotAliasInput(t *testing.T) {
	verts := []geom.Vec2{{0, 0}, {1, 0}, {0, 1}}
	b := block.MakePolyVerts2D(verts, 0, false)
	verts[0] = geom.Vec2{9, 9}
	require.Equal(t, geom.Vec2{0, 0}, b.Verts[0])
}
