package rbtree

// Inserter places a new node into a subtree without rebalancing it.
//
// Insert returns the resulting subtree root and whether n was added.
// A value comparing equal to one already in the subtree must leave the
// subtree unchanged and report false. Tree rebalances after every
// placement that reports true, whichever Inserter performed it.
type Inserter[T any] interface {
	Insert(root, n *Node[T], cmp Compare[T]) (*Node[T], bool)
}

// DefaultInserter is the plain binary search tree placement.
// It recurses once per level, which is bounded by the tree height.
type DefaultInserter[T any] struct{}

func (d DefaultInserter[T]) Insert(root, n *Node[T], cmp Compare[T]) (*Node[T], bool) {
	if root == nil {
		return n, true
	}

	var inserted bool
	switch c := cmp(n.Value, root.Value); {
	case c < 0:
		var child *Node[T]
		child, inserted = d.Insert(root.left, n, cmp)
		if inserted {
			root.SetLeft(child)
		}
	case c > 0:
		var child *Node[T]
		child, inserted = d.Insert(root.right, n, cmp)
		if inserted {
			root.SetRight(child)
		}
	}

	return root, inserted
}
