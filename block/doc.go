// Package block defines the in-memory parameter-block layout consumed by
// the HPMC engine, one block variant per shape family, plus the factory
// functions that build them.
//
// What:
//
//   - Block: the sealed marker interface every variant implements.
//   - Variants: Sphere, PolyVerts2D, PolyVerts3D, PolyData3D, FacetedSphere,
//     Sphinx, Ellipsoid, SphereUnion.
//   - Make* factories, one per variant. The sized factories
//     (MakePolyVerts3D, MakeSphereUnion) additionally take the capacity that
//     fixes the block layout and pad their member arrays to it; capacity is
//     set once per engine configuration and never grows.
//
// Why:
//
//   - Everything above this package treats a Block as opaque: the shape
//     layer validates and calls a factory, the registry hands the result to
//     the engine keyed by type index. Layout concerns live here only.
//
// Factories assume validated input — structural checks (vertex counts,
// paired lengths, capacity limits) belong to the shape layer and must have
// passed before a factory is called. Sized factories panic if fed more
// members than their capacity; that is a programming error upstream, not a
// data error.
package block
