// Package rbtree implements a conventional red-black tree with parent
// pointers and bottom-up fixups: the mutation first walks down to the
// affected position, then a separate repair loop walks back up restoring
// the coloring invariants. It provides the same contract as the other
// variants and exists for comparison against the single-pass engine.
package rbtree

import (
	"fmt"

	"github.com/treekit/trees/abstract"
)

type color bool

const red, black color = true, false

// Tree is an ordered key set. Inserting a key that is already present
// overwrites the stored value in place.
type Tree[T abstract.Ordered] struct {
	root *node[T]
}

type node[T abstract.Ordered] struct {
	value  T
	color  color
	left   *node[T]
	right  *node[T]
	parent *node[T]
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

func (n *node[T]) sibling() *node[T] {
	if n == n.parent.left {
		return n.parent.right
	}
	return n.parent.left
}

// Insert adds v to the tree, or overwrites the stored value if an equal
// key is already present.
func (t *Tree[T]) Insert(v T) {
	if t.root == nil {
		t.root = &node[T]{value: v, color: black}
		return
	}
	cur := t.root
	for {
		switch {
		case v < cur.value:
			if cur.left == nil {
				cur.left = &node[T]{value: v, color: red, parent: cur}
				t.insertFixup(cur.left)
				return
			}
			cur = cur.left
		case v > cur.value:
			if cur.right == nil {
				cur.right = &node[T]{value: v, color: red, parent: cur}
				t.insertFixup(cur.right)
				return
			}
			cur = cur.right
		default:
			cur.value = v
			return
		}
	}
}

func (t *Tree[T]) insertFixup(z *node[T]) {
	for z.parent.isRed() {
		g := z.parent.parent // the parent is red, so it cannot be the root
		if z.parent == g.left {
			if u := g.right; u.isRed() {
				z.parent.color = black
				u.color = black
				g.color = red
				z = g
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.color = black
			z.parent.parent.color = red
			t.rotateRight(z.parent.parent)
		} else {
			if u := g.left; u.isRed() {
				z.parent.color = black
				u.color = black
				g.color = red
				z = g
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.color = black
			z.parent.parent.color = red
			t.rotateLeft(z.parent.parent)
		}
	}
	t.root.color = black
}

// Delete removes v from the tree. Deleting an absent key is a no-op.
func (t *Tree[T]) Delete(v T) {
	n := t.search(v)
	if n == nil {
		return
	}
	// Reduce to removing a node with at most one real child by swapping
	// values with the predecessor.
	if n.left != nil && n.right != nil {
		p := n.left
		for p.right != nil {
			p = p.right
		}
		n.value, p.value = p.value, n.value
		n = p
	}
	c := n.right
	if c == nil {
		c = n.left
	}
	t.deleteFixup(n, c)
	t.replaceChild(n, c)
}

// deleteFixup restores the black-height invariant before n, which has at
// most one real child c, is unlinked from the tree.
func (t *Tree[T]) deleteFixup(n, c *node[T]) {
	if n.color == red {
		return
	}
	if c.isRed() {
		c.color = black
		return
	}
	for {
		if n.parent == nil {
			return
		}
		// A doubly-black position always has a sibling.
		s := n.sibling()
		if s.isRed() {
			n.parent.color = red
			s.color = black
			if n == n.parent.left {
				t.rotateLeft(n.parent)
			} else {
				t.rotateRight(n.parent)
			}
			s = n.sibling()
		}
		if !s.left.isRed() && !s.right.isRed() {
			s.color = red
			if !n.parent.isRed() {
				n = n.parent
				continue
			}
			n.parent.color = black
			return
		}
		if n == n.parent.left && !s.right.isRed() {
			s.color = red
			s.left.color = black
			t.rotateRight(s)
			s = n.sibling()
		} else if n == n.parent.right && !s.left.isRed() {
			s.color = red
			s.right.color = black
			t.rotateLeft(s)
			s = n.sibling()
		}
		s.color = n.parent.color
		n.parent.color = black
		if n == n.parent.left {
			s.right.color = black
			t.rotateLeft(n.parent)
		} else {
			s.left.color = black
			t.rotateRight(n.parent)
		}
		return
	}
}

// replaceChild splices c into n's place under n's parent.
func (t *Tree[T]) replaceChild(n, c *node[T]) {
	p := n.parent
	if c != nil {
		c.parent = p
	}
	if p == nil {
		t.root = c
		return
	}
	if n == p.left {
		p.left = c
	} else {
		p.right = c
	}
}

func (t *Tree[T]) rotateLeft(x *node[T]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[T]) rotateRight(y *node[T]) {
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.right:
		y.parent.right = x
	default:
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (t *Tree[T]) search(v T) *node[T] {
	cur := t.root
	for cur != nil {
		switch {
		case v < cur.value:
			cur = cur.left
		case v > cur.value:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
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

// Sprint renders the tree as a 2D grid with r/b color tags.
func (t *Tree[T]) Sprint() string {
	return abstract.Sprint[T, *node[T]](t.root)
}

// Clone returns a structurally independent deep copy of the tree.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{root: t.root.clone(nil)}
}

func (n *node[T]) clone(parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	c := &node[T]{value: n.value, color: n.color, parent: parent}
	c.left = n.left.clone(c)
	c.right = n.right.clone(c)
	return c
}
