package tupleclass

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNotSequence reports a comparison of a tuple against a value that
// is not a sequence (a *Tuple, or a slice or array).
var ErrNotSequence = errors.New("not a sequence")

// ErrIncomparable reports a comparison between two element values
// that have no ordering relative to each other.
var ErrIncomparable = errors.New("incomparable values")

// Equal reports whether the tuple's value sequence equals other,
// element-wise. other may be another *Tuple or any slice or array
// value; anything else fails with an error wrapping [ErrNotSequence].
// Sequences of different lengths are unequal.
func (t *Tuple) Equal(other any) (bool, error) {
	seq, ok := asSequence(other)
	if !ok {
		return false, fmt.Errorf("cannot compare %s with %T: %w", t.schema.name, other, ErrNotSequence)
	}
	return equalSeq(t.vals, seq), nil
}

// Compare orders the tuple's value sequence against other
// lexicographically, returning -1, 0 or 1. other may be another
// *Tuple or any slice or array value; anything else fails with an
// error wrapping [ErrNotSequence]. A pair of elements with no
// ordering relative to each other fails with an error wrapping
// [ErrIncomparable].
func (t *Tuple) Compare(other any) (int, error) {
	seq, ok := asSequence(other)
	if !ok {
		return 0, fmt.Errorf("cannot compare %s with %T: %w", t.schema.name, other, ErrNotSequence)
	}
	return compareSeq(t.vals, seq)
}

// asSequence returns v's elements as a []any when v is a sequence
// value.
func asSequence(v any) ([]any, bool) {
	switch v := v.(type) {
	case *Tuple:
		return v.vals, true
	case []any:
		return v, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make([]any, rv.Len())
		for i := range seq {
			seq[i] = rv.Index(i).Interface()
		}
		return seq, true
	}
	return nil, false
}

func equalSeq(s1, s2 []any) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if !equalValue(s1[i], s2[i]) {
			return false
		}
	}
	return true
}

// compareSeq compares two sequences lexicographically: the first
// unequal element pair decides, and a shorter sequence orders before
// any longer sequence it prefixes.
func compareSeq(s1, s2 []any) (int, error) {
	for i := 0; i < len(s1) && i < len(s2); i++ {
		c, err := compareValue(s1[i], s2[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	switch {
	case len(s1) == len(s2):
		return 0, nil
	case len(s1) < len(s2):
		return -1, nil
	}
	return 1, nil
}

// equalValue reports element equality. Numbers compare numerically
// across int, uint and float kinds; sequences compare element-wise;
// everything else falls back to deep equality.
func equalValue(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	if isNumber(xv) && isNumber(yv) {
		return compareNumber(xv, yv) == 0
	}
	if xs, ok := asSequence(x); ok {
		ys, ok := asSequence(y)
		return ok && equalSeq(xs, ys)
	}
	return reflect.DeepEqual(x, y)
}

// compareValue orders two element values. Numbers order numerically,
// strings lexically, bools false before true, and sequences
// recursively; nil orders equal only to nil. Any other pairing has
// no ordering.
func compareValue(x, y any) (int, error) {
	if x == nil && y == nil {
		return 0, nil
	}
	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	switch {
	case isNumber(xv) && isNumber(yv):
		return compareNumber(xv, yv), nil
	case xv.Kind() == reflect.String && yv.Kind() == reflect.String:
		return strings.Compare(xv.String(), yv.String()), nil
	case xv.Kind() == reflect.Bool && yv.Kind() == reflect.Bool:
		switch {
		case xv.Bool() == yv.Bool():
			return 0, nil
		case yv.Bool():
			return -1, nil
		}
		return 1, nil
	}
	if xs, ok := asSequence(x); ok {
		if ys, ok := asSequence(y); ok {
			return compareSeq(xs, ys)
		}
	}
	return 0, fmt.Errorf("cannot order %T against %T: %w", x, y, ErrIncomparable)
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || isFloat(v)
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// compareNumber orders two numeric values, staying in integer
// arithmetic when both sides are integers so large values do not
// lose precision.
func compareNumber(x, y reflect.Value) int {
	switch {
	case isInt(x) && isInt(y):
		return cmpOrdered(x.Int(), y.Int())
	case isUint(x) && isUint(y):
		return cmpOrdered(x.Uint(), y.Uint())
	case isInt(x) && isUint(y):
		if x.Int() < 0 {
			return -1
		}
		return cmpOrdered(uint64(x.Int()), y.Uint())
	case isUint(x) && isInt(y):
		if y.Int() < 0 {
			return 1
		}
		return cmpOrdered(x.Uint(), uint64(y.Int()))
	}
	return cmpOrdered(toFloat(x), toFloat(y))
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	}
	return v.Float()
}

func cmpOrdered[T int64 | uint64 | float64](x, y T) int {
	switch {
	case x == y:
		return 0
	case x < y:
		return -1
	}
	return 1
}
