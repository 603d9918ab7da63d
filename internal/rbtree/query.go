package rbtree

import (
	"errors"
	"fmt"
)

// Common errors returned by tree queries and iterators.
var (
	ErrEmptyTree     = errors.New("tree is empty")
	ErrNotFound      = errors.New("value not found")
	ErrChildNotFound = errors.New("child not found")
	ErrModified      = errors.New("tree modified during iteration")
)

// RootValue returns the value stored at the root.
func (t *Tree[T]) RootValue() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.Value, nil
}

// RootColor returns the color of the root, which is Black for any non-empty tree.
func (t *Tree[T]) RootColor() (Color, error) {
	if t.root == nil {
		return Black, ErrEmptyTree
	}
	return t.root.color, nil
}

// ValueAt returns the stored value that compares equal to value.
func (t *Tree[T]) ValueAt(value T) (T, error) {
	node, err := t.mustFind(value)
	if err != nil {
		var zero T
		return zero, err
	}
	return node.Value, nil
}

// ColorAt returns the color of the node holding value.
func (t *Tree[T]) ColorAt(value T) (Color, error) {
	node, err := t.mustFind(value)
	if err != nil {
		return Black, err
	}
	return node.color, nil
}

// LeftChildOf returns the value of the left child of the node holding parent.
func (t *Tree[T]) LeftChildOf(parent T) (T, error) {
	return t.childOf(parent, (*Node[T]).Left, "left")
}

// RightChildOf returns the value of the right child of the node holding parent.
func (t *Tree[T]) RightChildOf(parent T) (T, error) {
	return t.childOf(parent, (*Node[T]).Right, "right")
}

func (t *Tree[T]) childOf(parent T, child func(*Node[T]) *Node[T], side string) (T, error) {
	var zero T

	node, err := t.mustFind(parent)
	if err != nil {
		return zero, err
	}

	c := child(node)
	if c == nil {
		return zero, fmt.Errorf("%s child of %v: %w", side, parent, ErrChildNotFound)
	}
	return c.Value, nil
}

// Contains checks if a value is present in the tree.
func (t *Tree[T]) Contains(value T) bool {
	return t.findNode(value) != nil
}

func (t *Tree[T]) mustFind(value T) (*Node[T], error) {
	node := t.findNode(value)
	if node == nil {
		return nil, fmt.Errorf("%v: %w", value, ErrNotFound)
	}
	return node, nil
}

func (t *Tree[T]) findNode(value T) *Node[T] {
	current := t.root
	for current != nil {
		c := t.cmp(value, current.Value)
		if c == 0 {
			return current
		} else if c < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	return nil
}
