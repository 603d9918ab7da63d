// Package rbtree implements a Red-Black Tree ordered set
// with insertion, point lookups and filtered in-order traversal.
//
// Red-Black Tree is a self-balancing binary search tree that guarantees
// O(log n) time complexity for basic operations. Values that compare
// equal to a stored value are rejected, so the tree never holds duplicates.
//
// A Tree is not safe for concurrent use. Mutating a tree while one of its
// sequences is being consumed is a precondition violation and is reported
// with ErrModified.
package rbtree

import (
	"golang.org/x/exp/constraints"
)

// Color is the color tag of a node.
type Color bool

const (
	Red   Color = true
	Black Color = false
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Compare is a three-way comparison: negative when a < b,
// zero when a == b and positive when a > b.
type Compare[T any] func(a, b T) int

// Comparer is implemented by element types that order themselves.
type Comparer[T any] interface {
	Compare(other T) int
}

// Tree represents a Red-Black Tree instance.
// Use New, NewFunc or NewComparable to create a tree.
type Tree[T any] struct {
	root     *Node[T]
	count    int
	mods     uint64 // bumped on every successful insertion
	cmp      Compare[T]
	inserter Inserter[T]
}

// Option configures a Tree.
type Option[T any] func(*Tree[T])

// WithInserter replaces the placement policy used by Insert.
func WithInserter[T any](ins Inserter[T]) Option[T] {
	return func(t *Tree[T]) {
		if ins != nil {
			t.inserter = ins
		}
	}
}

// New creates an empty tree over a naturally ordered element type.
// NaN is unordered and must not be inserted into a float tree.
func New[T constraints.Ordered](opts ...Option[T]) *Tree[T] {
	return NewFunc[T](ordered[T], opts...)
}

// NewComparable creates an empty tree whose elements compare themselves.
func NewComparable[T Comparer[T]](opts ...Option[T]) *Tree[T] {
	return NewFunc[T](func(a, b T) int { return a.Compare(b) }, opts...)
}

// NewFunc creates an empty tree ordered by cmp.
func NewFunc[T any](cmp Compare[T], opts ...Option[T]) *Tree[T] {
	if cmp == nil {
		panic("rbtree: nil comparison")
	}
	t := &Tree[T]{
		cmp:      cmp,
		inserter: DefaultInserter[T]{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Len returns the number of stored values.
func (t *Tree[T]) Len() int {
	return t.count
}

// Insert adds value to the tree while maintaining
// Red-Black Tree properties. Duplicates are ignored.
func (t *Tree[T]) Insert(value T) {
	newNode := NewNode(value, Red)

	var inserted bool
	t.root, inserted = t.inserter.Insert(t.root, newNode, t.cmp)
	if t.root != nil {
		t.root.parent = nil
	}
	if !inserted {
		return
	}

	t.fixInsert(newNode)
	t.count++
	t.mods++
}

func (t *Tree[T]) fixInsert(z *Node[T]) {
	for z != t.root && z.color == Red && z.parent.color == Red {
		p := z.parent
		g := p.parent
		if g == nil {
			// p is a red root left by a custom inserter.
			break
		}

		if p == g.left {
			u := g.right
			if u != nil && u.color == Red {
				g.color = Red
				p.color = Black
				u.color = Black
				z = g
				continue
			}
			if z == p.right {
				t.leftRotate(p)
				z = p
				p = z.parent
			}
			t.rightRotate(g)
			p.color, g.color = g.color, p.color
			z = p
		} else {
			u := g.left
			if u != nil && u.color == Red {
				g.color = Red
				p.color = Black
				u.color = Black
				z = g
				continue
			}
			if z == p.left {
				t.rightRotate(p)
				z = p
				p = z.parent
			}
			t.leftRotate(g)
			p.color, g.color = g.color, p.color
			z = p
		}
	}
	// Applied on every insertion, including when the loop did not run.
	t.root.color = Black
}

// leftRotate lifts x.right into x's place: x(A, y(B, C)) becomes y(x(A, B), C).
func (t *Tree[T]) leftRotate(x *Node[T]) {
	y := x.right
	t.replace(x, y)
	x.SetRight(y.left)
	y.SetLeft(x)
}

// rightRotate lifts x.left into x's place: x(y(A, B), C) becomes y(A, x(B, C)).
func (t *Tree[T]) rightRotate(x *Node[T]) {
	y := x.left
	t.replace(x, y)
	x.SetLeft(y.right)
	y.SetRight(x)
}

// replace hangs n where old hangs, under old's parent or as the root.
func (t *Tree[T]) replace(old, n *Node[T]) {
	p := old.parent
	switch {
	case p == nil:
		t.root = n
	case p.left == old:
		p.left = n
	default:
		p.right = n
	}
	n.parent = p
}

// VerifyTreeProperties validates Red-Black Tree invariants:
// 1. Root is always black
// 2. Red nodes must have black children
// 3. All paths from node to leaves have same black node count
// 4. Values are strictly ascending in order and parent links match child links
// Returns true if all properties are satisfied
func (t *Tree[T]) VerifyTreeProperties() bool {
	if t.root == nil {
		return t.count == 0
	}
	if t.root.color != Black || t.root.parent != nil {
		return false
	}

	_, ok := t.checkSubtreeProperties(t.root, nil, nil)
	return ok
}

// checkSubtreeProperties returns the black height of node, counting the nil leaf.
// lo and hi are exclusive bounds inherited from the ancestors.
func (t *Tree[T]) checkSubtreeProperties(node *Node[T], lo, hi *T) (int, bool) {
	if node == nil {
		return 1, true
	}

	if lo != nil && t.cmp(node.Value, *lo) <= 0 {
		return 0, false
	}
	if hi != nil && t.cmp(node.Value, *hi) >= 0 {
		return 0, false
	}

	if node.left != nil && node.left.parent != node {
		return 0, false
	}
	if node.right != nil && node.right.parent != node {
		return 0, false
	}

	if node.color == Red && (node.left.isRed() || node.right.isRed()) {
		return 0, false
	}

	leftCount, leftOk := t.checkSubtreeProperties(node.left, lo, &node.Value)
	rightCount, rightOk := t.checkSubtreeProperties(node.right, &node.Value, hi)

	if !leftOk || !rightOk || leftCount != rightCount {
		return 0, false
	}

	if node.color == Black {
		leftCount++
	}
	return leftCount, true
}
