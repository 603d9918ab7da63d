package rbtree_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlonMell/grove/internal/rbtree"
)

func TestSelect(t *testing.T) {
	rb := rbtree.New[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		rb.Insert(v)
	}

	tests := []struct {
		name string
		pred func(int) bool
		want []int
	}{
		{"All", func(int) bool { return true }, []int{1, 2, 3, 4, 5}},
		{"NilPredicate", nil, []int{1, 2, 3, 4, 5}},
		{"GreaterThanThree", func(x int) bool { return x > 3 }, []int{4, 5}},
		{"Even", func(x int) bool { return x%2 == 0 }, []int{2, 4}},
		{"NoMatch", func(x int) bool { return x > 5 }, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(rb.Select(tt.pred)))
		})
	}
}

func TestSelectMatchesFilteredSort(t *testing.T) {
	r := rand.New(rand.NewSource(SOURCE))
	rb := rbtree.New[int]()
	set := map[int]struct{}{}
	for i := 0; i < SIZE; i++ {
		v := r.Intn(SIZE)
		rb.Insert(v)
		set[v] = struct{}{}
	}

	preds := map[string]func(int) bool{
		"Odd":       func(x int) bool { return x%2 == 1 },
		"Below100":  func(x int) bool { return x < 100 },
		"Multiple7": func(x int) bool { return x%7 == 0 },
	}

	for name, pred := range preds {
		t.Run(name, func(t *testing.T) {
			want := []int{}
			for v := range set {
				if pred(v) {
					want = append(want, v)
				}
			}
			slices.Sort(want)
			assert.Equal(t, want, collect(rb.Select(pred)))
		})
	}
}

func TestSelectIsRestartable(t *testing.T) {
	rb := rbtree.New[int]()
	for i := 10; i > 0; i-- {
		rb.Insert(i)
	}
	seq := rb.Select(func(x int) bool { return x%3 == 0 })

	first := collect(seq)
	second := collect(seq)
	assert.Equal(t, []int{3, 6, 9}, first)
	assert.Equal(t, first, second)

	rb.Insert(12)
	assert.Equal(t, []int{3, 6, 9, 12}, collect(seq))
}

func TestSelectEarlyBreak(t *testing.T) {
	rb := rbtree.New[int]()
	for i := range 100 {
		rb.Insert(i)
	}

	calls := 0
	pred := func(x int) bool {
		calls++
		return true
	}

	var got []int
	for v := range rb.Select(pred) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}

	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 100, rb.Len())
	assert.True(t, rb.VerifyTreeProperties())
}

func TestSelectPanicsOnInsert(t *testing.T) {
	rb := rbtree.New[int]()
	for i := range 10 {
		rb.Insert(i)
	}

	assert.PanicsWithError(t, rbtree.ErrModified.Error(), func() {
		for v := range rb.All() {
			rb.Insert(v + 100)
		}
	})
}

func TestSelectDuplicateInsertIsNotModification(t *testing.T) {
	rb := rbtree.New[int]()
	for i := range 10 {
		rb.Insert(i)
	}

	assert.NotPanics(t, func() {
		for v := range rb.All() {
			rb.Insert(v)
		}
	})
}

func TestIterator(t *testing.T) {
	rb := rbtree.New[string]()
	for _, v := range []string{"pear", "apple", "fig", "kiwi", "banana"} {
		rb.Insert(v)
	}

	it := rb.Iterator(func(s string) bool { return len(s) > 3 })
	var got []string
	for it.Next() {
		got = append(got, it.Value())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"apple", "banana", "kiwi", "pear"}, got)
	assert.False(t, it.Next())
}

func TestIteratorReportsModification(t *testing.T) {
	rb := rbtree.New[int]()
	for i := range 5 {
		rb.Insert(i)
	}

	it := rb.Iterator(nil)
	require.True(t, it.Next())
	assert.Equal(t, 0, it.Value())

	rb.Insert(42)
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), rbtree.ErrModified)
}

func TestRange(t *testing.T) {
	rb := rbtree.New[int]()
	for i := 0; i < 100; i += 5 {
		rb.Insert(i)
	}

	tests := []struct {
		name   string
		lo, hi int
		want   []int
	}{
		{"Inner", 12, 31, []int{15, 20, 25, 30}},
		{"InclusiveBounds", 15, 30, []int{15, 20, 25, 30}},
		{"Single", 50, 50, []int{50}},
		{"BelowAll", -10, -1, []int{}},
		{"AboveAll", 200, 300, []int{}},
		{"Everything", -1, 1000, collect(rb.All())},
		{"Inverted", 30, 10, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(rb.Range(tt.lo, tt.hi)))
		})
	}
}

func TestFilter(t *testing.T) {
	data := func(yield func(int) bool) {
		for i := range 50 {
			if !yield(i * 2) {
				return
			}
		}
	}

	var got []int
	for v := range rbtree.Filter(data, func(x int) bool { return x > 49 && x%2 == 0 }) {
		got = append(got, v)
		if len(got) == 10 {
			break
		}
	}
	assert.Equal(t, []int{50, 52, 54, 56, 58, 60, 62, 64, 66, 68}, got)

	dups := slices.Values([]string{"b", "a", "b", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, collect(rbtree.Filter(dups, func(string) bool { return true })))
}

func TestInsertWhileHandlingLastValue(t *testing.T) {
	fill := func() *rbtree.Tree[int] {
		rb := rbtree.New[int]()
		for i := range 10 {
			rb.Insert(i)
		}
		return rb
	}

	tests := []struct {
		name string
		seq  func(rb *rbtree.Tree[int]) func(yield func(int) bool)
		last int
	}{
		{"All", func(rb *rbtree.Tree[int]) func(yield func(int) bool) { return rb.All() }, 9},
		{"Select", func(rb *rbtree.Tree[int]) func(yield func(int) bool) {
			return rb.Select(func(x int) bool { return x%2 == 1 })
		}, 9},
		{"Range", func(rb *rbtree.Tree[int]) func(yield func(int) bool) { return rb.Range(3, 6) }, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := fill()
			assert.PanicsWithError(t, rbtree.ErrModified.Error(), func() {
				for v := range tt.seq(rb) {
					if v == tt.last {
						rb.Insert(100)
					}
				}
			})
			assert.Equal(t, 11, rb.Len())
		})
	}

	t.Run("Iterator", func(t *testing.T) {
		rb := fill()
		it := rb.Iterator(nil)
		var got []int
		for it.Next() {
			got = append(got, it.Value())
			if it.Value() == 9 {
				rb.Insert(100)
			}
		}
		assert.Len(t, got, 10)
		assert.ErrorIs(t, it.Err(), rbtree.ErrModified)
	})
}

func TestIteratorStaysExhausted(t *testing.T) {
	rb := rbtree.New[int]()
	rb.Insert(1)

	it := rb.Iterator(nil)
	require.True(t, it.Next())
	require.False(t, it.Next())

	rb.Insert(2)
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestFilterFunc(t *testing.T) {
	byVersion := func(a, b version) int { return a.Compare(b) }
	versions := slices.Values([]version{{2, 0}, {1, 4}, {0, 9}, {1, 4}, {1, 0}})

	got := collect(rbtree.FilterFunc(versions, byVersion, func(v version) bool { return v.major == 1 }))
	assert.Equal(t, []version{{1, 0}, {1, 4}}, got)

	assert.Empty(t, collect(rbtree.FilterFunc(versions, byVersion, func(v version) bool { return v.major > 5 })))
}
