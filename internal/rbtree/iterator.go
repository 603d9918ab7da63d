package rbtree

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator walks a tree in ascending order with an explicit stack.
// It yields only values accepted by its predicate and, for range
// iterators, values inside the bounds.
//
// An Iterator observes the tree it was created from. If the tree gains
// a value before the iterator is exhausted, Next returns false and Err
// reports ErrModified.
type Iterator[T any] struct {
	tree   *Tree[T]
	pred   func(T) bool
	lo, hi *T
	stack  []*Node[T]
	value  T
	mods   uint64
	done   bool
	err    error
}

// Iterator returns a fresh iterator over the values accepted by pred.
// A nil pred accepts every value.
func (t *Tree[T]) Iterator(pred func(T) bool) *Iterator[T] {
	return t.newIterator(pred, nil, nil)
}

func (t *Tree[T]) newIterator(pred func(T) bool, lo, hi *T) *Iterator[T] {
	it := &Iterator[T]{
		tree: t,
		pred: pred,
		lo:   lo,
		hi:   hi,
		mods: t.mods,
	}
	it.pushLeft(t.root)
	return it
}

// pushLeft descends the left spine of n, skipping nodes below the lower bound.
func (it *Iterator[T]) pushLeft(n *Node[T]) {
	for n != nil {
		if it.lo != nil && it.tree.cmp(n.Value, *it.lo) < 0 {
			n = n.right
			continue
		}
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next advances the iterator to the next accepted value.
// Returns false when no more values exist or the tree was modified
// since the iterator was created. Once Next returns false it keeps
// returning false.
func (it *Iterator[T]) Next() bool {
	for !it.done {
		if it.mods != it.tree.mods {
			it.err = ErrModified
			it.finish()
			break
		}
		if len(it.stack) == 0 {
			it.finish()
			break
		}

		current := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if it.hi != nil && it.tree.cmp(current.Value, *it.hi) > 0 {
			it.finish()
			break
		}

		it.pushLeft(current.right)

		if it.pred == nil || it.pred(current.Value) {
			it.value = current.Value
			return true
		}
	}
	return false
}

func (it *Iterator[T]) finish() {
	it.done = true
	it.stack = nil
}

// Value returns the current value.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Err returns ErrModified if iteration stopped because the tree changed.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Select returns the values accepted by pred in ascending order.
// Every range over the result starts a new traversal of the tree's
// current contents. Inserting into the tree while ranging panics.
func (t *Tree[T]) Select(pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		drain(t.Iterator(pred), yield)
	}
}

// All returns every stored value in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return t.Select(nil)
}

// Range returns the stored values v with lo <= v <= hi in ascending order.
// Subtrees entirely outside the bounds are never visited.
func (t *Tree[T]) Range(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		drain(t.newIterator(nil, &lo, &hi), yield)
	}
}

func drain[T any](it *Iterator[T], yield func(T) bool) {
	for it.Next() {
		if !yield(it.Value()) {
			return
		}
	}
	if err := it.Err(); err != nil {
		panic(err)
	}
}

// Filter loads seq into a new tree and returns the distinct values
// accepted by pred in ascending order.
func Filter[T constraints.Ordered](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return FilterFunc[T](seq, ordered[T], pred)
}

// FilterFunc is Filter for elements ordered by cmp. Values comparing
// equal under cmp are kept once, as first seen in seq.
func FilterFunc[T any](seq iter.Seq[T], cmp Compare[T], pred func(T) bool) iter.Seq[T] {
	t := NewFunc(cmp)
	for v := range seq {
		t.Insert(v)
	}
	return t.Select(pred)
}
