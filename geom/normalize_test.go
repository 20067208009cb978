package geom_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kproskurin/hpmcshape/geom"
)

//----------------------------------------------------------------------------//
// Scalar coercion
//----------------------------------------------------------------------------//

// TestFloat verifies numeric coercion across Go numeric types and rejection
// of everything else.
func TestFloat(t *testing.T) {
	ok := []struct {
		name string
		in   any
		want float64
	}{
		{"Float64", 1.5, 1.5},
		{"Float32", float32(2), 2.0},
		{"Int", 3, 3.0},
		{"Int64", int64(-4), -4.0},
		{"Uint8", uint8(7), 7.0},
	}
	for _, tc := range ok {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geom.Float(tc.in)
			if err != nil {
				t.Fatalf("Float(%v) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Float(%v) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}

	for _, bad := range []any{"1.5", nil, true, []float64{1}} {
		if _, err := geom.Float(bad); !errors.Is(err, geom.ErrNonNumeric) {
			t.Errorf("Float(%#v) error = %v; want ErrNonNumeric", bad, err)
		}
	}
}

//----------------------------------------------------------------------------//
// Sequence coercion
//----------------------------------------------------------------------------//

// TestFloats_LooseInputs checks coercion from []any, typed slices, and arrays.
func TestFloats_LooseInputs(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []float64
	}{
		{"AnySlice", []any{1, 2.5, int64(3)}, []float64{1, 2.5, 3}},
		{"Float32Slice", []float32{1, 2}, []float64{1, 2}},
		{"IntSlice", []int{4, 5}, []float64{4, 5}},
		{"Array", [2]float64{6, 7}, []float64{6, 7}},
		{"Empty", []any{}, []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geom.Floats(tc.in)
			if err != nil {
				t.Fatalf("Floats error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Floats = %v; want %v", got, tc.want)
			}
		})
	}

	if _, err := geom.Floats(1.0); !errors.Is(err, geom.ErrNotSequence) {
		t.Errorf("Floats(scalar) error = %v; want ErrNotSequence", err)
	}
	if _, err := geom.Floats([]any{1, "x"}); !errors.Is(err, geom.ErrNonNumeric) {
		t.Errorf("Floats(mixed) error = %v; want ErrNonNumeric", err)
	}
}

// TestFloats_Idempotent verifies that normalizing canonical output is a no-op
// and that the result does not alias the input.
func TestFloats_Idempotent(t *testing.T) {
	in := []float64{1, 2, 3}
	once, err := geom.Floats(in)
	if err != nil {
		t.Fatalf("Floats error: %v", err)
	}
	twice, err := geom.Floats(once)
	if err != nil {
		t.Fatalf("Floats(Floats(...)) error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass = %v; want %v", twice, once)
	}
	once[0] = 99
	if twice[0] == 99 {
		t.Error("normalized slice aliases its input")
	}
}

// TestInts rejects fractional entries and accepts exact ones.
func TestInts(t *testing.T) {
	got, err := geom.Ints([]any{0, 1.0, 2})
	if err != nil {
		t.Fatalf("Ints error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("Ints = %v; want [0 1 2]", got)
	}
	if _, err = geom.Ints([]any{0, 1.5}); !errors.Is(err, geom.ErrNonNumeric) {
		t.Errorf("Ints(fractional) error = %v; want ErrNonNumeric", err)
	}
}

// TestBools accepts booleans and 0/1 flag lists.
func TestBools(t *testing.T) {
	got, err := geom.Bools([]any{true, 0, 1, false})
	if err != nil {
		t.Fatalf("Bools error: %v", err)
	}
	if !reflect.DeepEqual(got, []bool{true, false, true, false}) {
		t.Errorf("Bools = %v", got)
	}
}

//----------------------------------------------------------------------------//
// Tuple coercion
//----------------------------------------------------------------------------//

// TestVec2s_Arity verifies width checks on 2-tuples.
func TestVec2s_Arity(t *testing.T) {
	got, err := geom.Vec2s([][]float64{{0, 0}, {1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("Vec2s error: %v", err)
	}
	want := []geom.Vec2{{0, 0}, {1, 0}, {0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vec2s = %v; want %v", got, want)
	}

	if _, err = geom.Vec2s([][]float64{{0, 0, 0}}); !errors.Is(err, geom.ErrArity) {
		t.Errorf("Vec2s(3-wide) error = %v; want ErrArity", err)
	}
}

// TestVec3s_Idempotent checks the canonical fast path for Vec3 slices.
func TestVec3s_Idempotent(t *testing.T) {
	in := []geom.Vec3{{1, 2, 3}, {4, 5, 6}}
	got, err := geom.Vec3s(in)
	if err != nil {
		t.Fatalf("Vec3s error: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Vec3s = %v; want %v", got, in)
	}
}

// TestVec3Of covers the single-tuple helper used for origins.
func TestVec3Of(t *testing.T) {
	got, err := geom.Vec3Of([]any{1, 2, 3})
	if err != nil {
		t.Fatalf("Vec3Of error: %v", err)
	}
	if got != (geom.Vec3{1, 2, 3}) {
		t.Errorf("Vec3Of = %v; want {1 2 3}", got)
	}
	if _, err = geom.Vec3Of([]any{1, 2}); !errors.Is(err, geom.ErrArity) {
		t.Errorf("Vec3Of(2-wide) error = %v; want ErrArity", err)
	}
	if _, err = geom.Vec3Of(5); !errors.Is(err, geom.ErrNotSequence) {
		t.Errorf("Vec3Of(scalar) error = %v; want ErrNotSequence", err)
	}
}

// TestQuats verifies scalar-first quaternion coercion and Identity.
func TestQuats(t *testing.T) {
	got, err := geom.Quats([][]float64{{1, 0, 0, 0}})
	if err != nil {
		t.Fatalf("Quats error: %v", err)
	}
	if len(got) != 1 || got[0] != geom.Identity() {
		t.Errorf("Quats = %v; want [Identity]", got)
	}
}
