package geom

import (
	"fmt"
	"reflect"
	"slices"
)

// Float coerces a single loose value to float64.
// Accepts every Go integer and float type; everything else fails with
// ErrNonNumeric naming the offending type.
func Float(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNonNumeric, v)
	}
}

// Floats coerces a loose sequence to a fresh []float64.
// Complexity: O(n).
func Floats(v any) ([]float64, error) {
	if fs, ok := v.([]float64); ok {
		return slices.Clone(fs), nil
	}
	elems, ok := sequence(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSequence, v)
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		f, err := Float(e)
		if err != nil {
			return nil, fmt.Errorf("geom: element %d: %w", i, err)
		}
		out[i] = f
	}

	return out, nil
}

// Ints coerces a loose sequence to a fresh []int. Fractional values are
// rejected with ErrNonNumeric: an index list must be exact.
func Ints(v any) ([]int, error) {
	if is, ok := v.([]int); ok {
		return slices.Clone(is), nil
	}
	elems, ok := sequence(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSequence, v)
	}
	out := make([]int, len(elems))
	for i, e := range elems {
		f, err := Float(e)
		if err != nil {
			return nil, fmt.Errorf("geom: element %d: %w", i, err)
		}
		if f != float64(int(f)) {
			return nil, fmt.Errorf("geom: element %d: %w: %v is not an integer", i, ErrNonNumeric, f)
		}
		out[i] = int(f)
	}

	return out, nil
}

// Bools coerces a loose sequence to a fresh []bool. Accepts booleans and
// numbers (zero is false, anything else true), matching the 0/1 flag lists
// common in simulation scripts.
func Bools(v any) ([]bool, error) {
	if bs, ok := v.([]bool); ok {
		return slices.Clone(bs), nil
	}
	elems, ok := sequence(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSequence, v)
	}
	out := make([]bool, len(elems))
	for i, e := range elems {
		if b, ok := e.(bool); ok {
			out[i] = b
			continue
		}
		f, err := Float(e)
		if err != nil {
			return nil, fmt.Errorf("geom: element %d: %w", i, err)
		}
		out[i] = f != 0
	}

	return out, nil
}

// Vec2s coerces a loose sequence of 2-tuples to a fresh []Vec2.
func Vec2s(v any) ([]Vec2, error) {
	if vs, ok := v.([]Vec2); ok {
		return slices.Clone(vs), nil
	}
	elems, ok := sequence(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSequence, v)
	}
	out := make([]Vec2, len(elems))
	for i, e := range elems {
		if t, ok := e.(Vec2); ok {
			out[i] = t
			continue
		}
		if err := tuple(e, out[i][:]); err != nil {
			return nil, fmt.Errorf("geom: element %d: %w", i, err)
		}
	}

	return out, nil
}

// Vec3s coerces a loose sequence of 3-tuples to a fresh []Vec3.
func Vec3s(v any) ([]Vec3, error) {
	if vs, ok := v.([]Vec3); ok {
		return slices.Clone(vs), nil
	}
	elems, ok := sequence(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSequence, v)
	}
	out := make([]Vec3, len(elems))
	for i, e := range elems {
		if t, ok := e.(Vec3); ok {
			out[i] = t
			continue
		}
		if err := tuple(e, out[i][:]); err != nil {
			return nil, fmt.Errorf("geom: element %d: %w", i, err)
		}
	}

	return out, nil
}

// Vec3Of coerces a single loose 3-tuple to a Vec3.
func Vec3Of(v any) (Vec3, error) {
	if t, ok := v.(Vec3); ok {
		return t, nil
	}
	var out Vec3
	if err := tuple(v, out[:]); err != nil {
		return Vec3{}, err
	}

	return out, nil
}

// Quats coerces a loose sequence of scalar-first 4-tuples to a fresh []Quat.
func Quats(v any) ([]Quat, error) {
	if qs, ok := v.([]Quat); ok {
		return slices.Clone(qs), nil
	}
	elems, ok := sequence(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSequence, v)
	}
	out := make([]Quat, len(elems))
	for i, e := range elems {
		if t, ok := e.(Quat); ok {
			out[i] = t
			continue
		}
		if err := tuple(e, out[i][:]); err != nil {
			return nil, fmt.Errorf("geom: element %d: %w", i, err)
		}
	}

	return out, nil
}

// tuple fills dst from a loose fixed-width sequence.
func tuple(v any, dst []float64) error {
	elems, ok := sequence(v)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotSequence, v)
	}
	if len(elems) != len(dst) {
		return fmt.Errorf("%w: got %d components, want %d", ErrArity, len(elems), len(dst))
	}
	for i, e := range elems {
		f, err := Float(e)
		if err != nil {
			return err
		}
		dst[i] = f
	}

	return nil
}

// sequence flattens any slice or array value into []any.
// The reflect fallback covers typed slices ([]float32, [][]float64, [3]int…)
// without enumerating them case by case.
func sequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}
