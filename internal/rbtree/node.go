package rbtree

// Node holds one stored value. The parent link is a back-reference used
// for upward walks during fixup and rotation; children are reached only
// through left and right.
type Node[T any] struct {
	Value               T
	color               Color
	left, right, parent *Node[T]
}

// NewNode returns a detached node.
func NewNode[T any](value T, color Color) *Node[T] {
	return &Node[T]{Value: value, color: color}
}

func (n *Node[T]) Color() Color { return n.color }
func (n *Node[T]) Left() *Node[T] { return n.left }
func (n *Node[T]) Right() *Node[T] { return n.right }
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// SetLeft makes child the left child of n and points child back at n.
func (n *Node[T]) SetLeft(child *Node[T]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

// SetRight makes child the right child of n and points child back at n.
func (n *Node[T]) SetRight(child *Node[T]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

// isRed treats a nil leaf as black.
func (n *Node[T]) isRed() bool {
	return n != nil && n.color == Red
}
