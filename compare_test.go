package tupleclass_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/nickramsay19/tupleclass"
)

var pairSchema = tupleclass.MustSchema("Pair",
	tupleclass.Field{Name: "a"},
	tupleclass.Field{Name: "b"},
)

func pair(t *testing.T, a, b any) *tupleclass.Tuple {
	t.Helper()
	p, err := pairSchema.New(a, b)
	qt.Assert(t, qt.IsNil(err))
	return p
}

func TestEqual(t *testing.T) {
	p := pair(t, 10, "hi")

	for _, other := range []any{
		[]any{10, "hi"},
		pair(t, 10, "hi"),
	} {
		eq, err := p.Equal(other)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.IsTrue(eq), qt.Commentf("other %v", other))
	}

	for _, other := range []any{
		[]any{10, "bye"},
		[]any{10},
		[]any{10, "hi", 0},
		pair(t, 11, "hi"),
	} {
		eq, err := p.Equal(other)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.IsFalse(eq), qt.Commentf("other %v", other))
	}
}

func TestEqualTypedSlice(t *testing.T) {
	p := pair(t, 1, 2)

	eq, err := p.Equal([]int{1, 2})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(eq))

	// Numbers compare numerically across kinds.
	eq, err = p.Equal([]float64{1, 2})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(eq))
}

func TestEqualNotSequence(t *testing.T) {
	p := pair(t, 1, 2)

	_, err := p.Equal(42)
	qt.Assert(t, qt.ErrorIs(err, tupleclass.ErrNotSequence))
	qt.Assert(t, qt.ErrorMatches(err, `cannot compare Pair with int: not a sequence`))

	_, err = p.Equal(nil)
	qt.Assert(t, qt.ErrorIs(err, tupleclass.ErrNotSequence))
}

func TestCompare(t *testing.T) {
	p := pair(t, 1, "b")

	for _, test := range []struct {
		other any
		want  int
	}{
		{[]any{1, "b"}, 0},
		{[]any{1, "c"}, -1},
		{[]any{1, "a"}, 1},
		{[]any{2, "a"}, -1},
		{[]any{0, "z"}, 1},
		// A shorter sequence orders before any longer one it prefixes.
		{[]any{1}, 1},
		{[]any{1, "b", 0}, -1},
		{pair(t, 1, "c"), -1},
	} {
		c, err := p.Compare(test.other)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(c, test.want), qt.Commentf("other %v", test.other))
	}
}

func TestCompareNumericKinds(t *testing.T) {
	p := pair(t, 1, 2.5)

	c, err := p.Compare([]any{uint8(1), 3})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c, -1))

	// A negative int orders below any uint.
	n := pair(t, -1, 0)
	c, err = n.Compare([]any{uint(0), 0})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c, -1))
}

func TestCompareBools(t *testing.T) {
	p := pair(t, false, true)

	c, err := p.Compare([]any{true, true})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c, -1))

	c, err = p.Compare([]any{false, true})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c, 0))
}

func TestCompareNestedSequence(t *testing.T) {
	p := pair(t, []any{1, 2}, "x")

	c, err := p.Compare([]any{[]any{1, 3}, "a"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c, -1))

	eq, err := p.Equal([]any{[]int{1, 2}, "x"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(eq))
}

func TestCompareIncomparable(t *testing.T) {
	p := pair(t, 1, "b")

	_, err := p.Compare([]any{"a", "b"})
	qt.Assert(t, qt.ErrorIs(err, tupleclass.ErrIncomparable))
	qt.Assert(t, qt.ErrorMatches(err, `cannot order int against string: incomparable values`))

	// nil orders equal only to nil.
	_, err = p.Compare([]any{nil, "b"})
	qt.Assert(t, qt.ErrorIs(err, tupleclass.ErrIncomparable))

	u, err := pairSchema.New()
	qt.Assert(t, qt.IsNil(err))
	c, err := u.Compare([]any{nil, nil})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c, 0))
}

func TestCompareNotSequence(t *testing.T) {
	p := pair(t, 1, "b")

	_, err := p.Compare("ab")
	qt.Assert(t, qt.ErrorIs(err, tupleclass.ErrNotSequence))
}

func TestEqualNilElements(t *testing.T) {
	u, err := pairSchema.New()
	qt.Assert(t, qt.IsNil(err))

	eq, err := u.Equal([]any{nil, nil})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(eq))

	eq, err = u.Equal([]any{nil, 0})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(eq))
}
