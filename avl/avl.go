// Package avl implements a height-balanced AVL tree on the shared tree
// contract. Mutations are recursive: each frame returns the (possibly
// rebalanced) subtree root to its parent.
package avl

import (
	"fmt"

	"github.com/treekit/trees/abstract"
)

// Tree is an ordered key set. Inserting a key that is already present
// overwrites the stored value in place.
type Tree[T abstract.Ordered] struct {
	root *node[T]
}

type node[T abstract.Ordered] struct {
	value  T
	height int // cached subtree height, nil counts 0; balance bookkeeping only
	left   *node[T]
	right  *node[T]
}

// New returns an empty tree.
func New[T abstract.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

func (n *node[T]) Left() *node[T]  { return n.left }
func (n *node[T]) Right() *node[T] { return n.right }
func (n *node[T]) Value() T        { return n.value }
func (n *node[T]) Label() string   { return fmt.Sprint(n.value) }

func (n *node[T]) h() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) balance() int {
	return n.left.h() - n.right.h()
}

func (n *node[T]) update() {
	n.height = max(n.left.h(), n.right.h()) + 1
}

// Insert adds v to the tree, or overwrites the stored value if an equal
// key is already present.
func (t *Tree[T]) Insert(v T) {
	t.root = t.root.insert(v)
}

func (n *node[T]) insert(v T) *node[T] {
	if n == nil {
		return &node[T]{value: v, height: 1}
	}
	switch {
	case v < n.value:
		n.left = n.left.insert(v)
	case v > n.value:
		n.right = n.right.insert(v)
	default:
		n.value = v
		return n
	}
	return n.rebalance()
}

// Delete removes v from the tree. Deleting an absent key is a no-op.
func (t *Tree[T]) Delete(v T) {
	t.root = t.root.delete(v)
}

func (n *node[T]) delete(v T) *node[T] {
	if n == nil {
		return nil
	}
	switch {
	case v < n.value:
		n.left = n.left.delete(v)
	case v > n.value:
		n.right = n.right.delete(v)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		m, _ := abstract.Min[T, *node[T]](n.right)
		n.value = m
		n.right = n.right.delete(m)
	}
	return n.rebalance()
}

func (n *node[T]) rebalance() *node[T] {
	n.update()
	switch b := n.balance(); {
	case b > 1:
		if n.left.balance() < 0 {
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	case b < -1:
		if n.right.balance() > 0 {
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	}
	return n
}

func (n *node[T]) rotateLeft() *node[T] {
	r := n.right
	n.right = r.left
	r.left = n
	n.update()
	r.update()
	return r
}

func (n *node[T]) rotateRight() *node[T] {
	l := n.left
	n.left = l.right
	l.right = n
	n.update()
	l.update()
	return l
}

// Contains reports whether v is in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return abstract.Contains(t.root, v)
}

// Min returns the smallest key, or false on an empty tree.
func (t *Tree[T]) Min() (T, bool) {
	return abstract.Min[T, *node[T]](t.root)
}

// Max returns the largest key, or false on an empty tree.
func (t *Tree[T]) Max() (T, bool) {
	return abstract.Max[T, *node[T]](t.root)
}

// Height returns the tree height, counting absent children as height 1.
func (t *Tree[T]) Height() uint {
	if t.root == nil {
		return 0
	}
	return abstract.Height[T, *node[T]](t.root)
}

// CountLeaves counts the absent children of the tree.
func (t *Tree[T]) CountLeaves() uint {
	return abstract.CountLeaves[T, *node[T]](t.root)
}

// InOrder returns the keys in ascending order.
func (t *Tree[T]) InOrder() []T {
	return abstract.AppendInOrder[T, *node[T]](t.root, nil)
}

// PreOrder returns the keys in pre-order.
func (t *Tree[T]) PreOrder() []T {
	return abstract.AppendPreOrder[T, *node[T]](t.root, nil)
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Sprint renders the tree as a 2D grid.
func (t *Tree[T]) Sprint() string {
	return abstract.Sprint[T, *node[T]](t.root)
}

// Clone returns a structurally independent deep copy of the tree.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{root: t.root.clone()}
}

func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value:  n.value,
		height: n.height,
		left:   n.left.clone(),
		right:  n.right.clone(),
	}
}
