// Package llrb implements a left-leaning red-black tree that repairs its
// invariants during the same recursive descent that performs the mutation.
// There is no separate bottom-up fixup pass: every recursive insert and
// delete frame hands its subtree to maintain before returning, so the
// corrections propagate upward through the returned subtree roots.
package llrb

import (
	"fmt"

	"github.com/treekit/trees/abstract"
)

type color bool

const red, black color = true, false

// Tree is an ordered key set. Inserting a key that is already present
// overwrites the stored value in place; keys are never duplicated.
// The zero value is not usable, call New.
type Tree[T abstract.Ordered] struct {
	root *node[T]
}

type node[T abstract.Ordered] struct {
	value T
	color color
	left  *node[T]
	right *node[T]
}

// New returns an empty tree.
func New[T abstract.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

func (n *node[T]) Left() *node[T]  { return n.left }
func (n *node[T]) Right() *node[T] { return n.right }
func (n *node[T]) Value() T        { return n.value }

func (n *node[T]) Label() string {
	if n.color == red {
		return fmt.Sprintf("%vr", n.value)
	}
	return fmt.Sprintf("%vb", n.value)
}

// isRed treats an absent child as a black leaf.
func (n *node[T]) isRed() bool {
	return n != nil && n.color == red
}

// Insert adds v to the tree, or overwrites the stored value if an equal
// key is already present.
func (t *Tree[T]) Insert(v T) {
	t.root = t.root.insert(v)
	t.root.color = black
}

func (n *node[T]) insert(v T) *node[T] {
	if n == nil {
		return &node[T]{value: v, color: red}
	}
	switch {
	case v < n.value:
		n.left = n.left.insert(v)
	case v > n.value:
		n.right = n.right.insert(v)
	default:
		n.value = v
	}
	return n.maintain()
}

// Delete removes v from the tree. Deleting an absent key is a no-op.
func (t *Tree[T]) Delete(v T) {
	if t.root == nil {
		return
	}
	// 2-3 tree entry trick: make sure the descent starts with a red link
	// available, then restore the root invariant afterwards.
	if !t.root.left.isRed() && !t.root.right.isRed() {
		t.root.color = red
	}
	t.root = t.root.delete(v)
	if t.root != nil {
		t.root.color = black
	}
}

func (n *node[T]) delete(v T) *node[T] {
	if n == nil {
		return nil
	}
	if v < n.value {
		if n.left != nil && !n.left.isRed() && !n.left.left.isRed() {
			n = n.moveRedLeft()
		}
		n.left = n.left.delete(v)
	} else {
		if n.left.isRed() {
			n = n.rotateRight()
		}
		if v == n.value && n.right == nil {
			return nil
		}
		if n.right != nil && !n.right.isRed() && !n.right.left.isRed() {
			n = n.moveRedRight()
		}
		if v == n.value {
			// Successor substitution: take the smallest value of the
			// right subtree and delete that value from it instead.
			m, _ := abstract.Min[T, *node[T]](n.right)
			n.value = m
			n.right = n.right.delete(m)
		} else {
			n.right = n.right.delete(v)
		}
	}
	return n.maintain()
}

// maintain repairs the subtree rooted at n after a structural change to
// its children and returns the new subtree root. It eliminates the three
// disallowed local shapes in priority order: a red right child with a
// black left child, two reds in a row on the left, and two red children.
func (n *node[T]) maintain() *node[T] {
	if n.right.isRed() && !n.left.isRed() {
		n = n.rotateLeft()
		if n.left.isRed() && n.left.left.isRed() {
			n = n.rotateRight()
			if n.left.isRed() && n.right.isRed() {
				n.flipColors()
			}
		}
		return n
	}
	if n.left.isRed() && n.left.left.isRed() {
		n = n.rotateRight()
		if n.left.isRed() && n.right.isRed() {
			n.flipColors()
		}
		return n
	}
	if n.left.isRed() && n.right.isRed() {
		n.flipColors()
	}
	return n
}

// moveRedLeft pushes a red link down into the left subtree so that the
// delete descending there has a red node to absorb the removal. The
// entry state is a red node over two black children, so the flip here
// must invert colors, not force the maintain-direction recolor.
// Assumes n.left and n.right are present.
func (n *node[T]) moveRedLeft() *node[T] {
	n.invertColors()
	if n.right.left.isRed() {
		n.right = n.right.rotateRight()
		n = n.rotateLeft()
		n.invertColors()
	}
	return n
}

// moveRedRight is the mirror of moveRedLeft.
func (n *node[T]) moveRedRight() *node[T] {
	n.invertColors()
	if n.left.left.isRed() {
		n = n.rotateRight()
		n.invertColors()
	}
	return n
}

// rotateLeft promotes n.right. The promoted node inherits n's color and
// n turns red.
func (n *node[T]) rotateLeft() *node[T] {
	r := n.right
	n.right = r.left
	r.left = n
	r.color = n.color
	n.color = red
	return r
}

// rotateRight promotes n.left.
func (n *node[T]) rotateRight() *node[T] {
	l := n.left
	n.left = l.right
	l.right = n
	l.color = n.color
	n.color = red
	return l
}

// flipColors assumes both children are present.
func (n *node[T]) flipColors() {
	n.left.color = black
	n.right.color = black
	n.color = red
}

// invertColors flips the color of n and both children. Assumes both
// children are present.
func (n *node[T]) invertColors() {
	n.color = !n.color
	n.left.color = !n.left.color
	n.right.color = !n.right.color
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
// An empty tree reports 0 and a single node reports 2.
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

// Sprint renders the tree as a 2D grid with r/b color tags.
func (t *Tree[T]) Sprint() string {
	return abstract.Sprint[T, *node[T]](t.root)
}

// IsValid reports whether the tree satisfies the red-black black-height
// invariant: every path from a node to its reachable nil descendants
// crosses the same number of black nodes. Diagnostic; the mutating
// operations never call it.
func (t *Tree[T]) IsValid() bool {
	_, ok := t.root.blackHeight()
	return ok
}

func (n *node[T]) blackHeight() (uint, bool) {
	if n == nil {
		return 1, true
	}
	lh, ok := n.left.blackHeight()
	if !ok {
		return 0, false
	}
	rh, ok := n.right.blackHeight()
	if !ok || lh != rh {
		return 0, false
	}
	if n.color == black {
		return lh + 1, true
	}
	return lh, true
}

// Clone returns a structurally independent deep copy of the tree.
// Mutating the clone never touches the receiver's nodes.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{root: t.root.clone()}
}

func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value: n.value,
		color: n.color,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}
