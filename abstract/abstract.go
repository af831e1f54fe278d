// Package abstract holds the node contract shared by every balanced tree
// in this module and the generic read-only walkers built on top of it.
// The concrete trees own their node types and mutation logic; everything
// that only needs ordering and child pointers lives here, implemented once.
package abstract

// Ordered is the constraint for keys stored in the trees.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Binary is implemented by the node pointer type of each tree variant.
// N is the concrete node pointer itself; its zero value is the absent
// child. None of the methods are called on the zero value.
type Binary[T Ordered, N any] interface {
	comparable
	Left() N
	Right() N
	Value() T
	Label() string
}

// Contains reports whether v is stored in the subtree rooted at n.
func Contains[T Ordered, N Binary[T, N]](n N, v T) bool {
	var nilNode N
	if n == nilNode {
		return false
	}
	switch cur := n.Value(); {
	case v < cur:
		return Contains(n.Left(), v)
	case v > cur:
		return Contains(n.Right(), v)
	default:
		return true
	}
}

// Min returns the smallest value in the subtree rooted at n.
func Min[T Ordered, N Binary[T, N]](n N) (T, bool) {
	var nilNode N
	if n == nilNode {
		var zero T
		return zero, false
	}
	if l := n.Left(); l != nilNode {
		return Min[T, N](l)
	}
	return n.Value(), true
}

// Max returns the largest value in the subtree rooted at n.
func Max[T Ordered, N Binary[T, N]](n N) (T, bool) {
	var nilNode N
	if n == nilNode {
		var zero T
		return zero, false
	}
	if r := n.Right(); r != nilNode {
		return Max[T, N](r)
	}
	return n.Value(), true
}

// Height returns the height of the subtree rooted at n. An absent child
// counts as height 1, not 0: the trees model missing children as black
// leaf nodes, so a single real node reports height 2. Callers that want 0
// for an empty tree check the root themselves.
func Height[T Ordered, N Binary[T, N]](n N) uint {
	var nilNode N
	if n == nilNode {
		return 1
	}
	lh := Height[T, N](n.Left())
	rh := Height[T, N](n.Right())
	return max(lh, rh) + 1
}

// CountLeaves counts the absent children hanging off the subtree rooted
// at n. A lone node reports 2 (both of its nil children); a node with one
// real child contributes the missing side plus the child's count.
func CountLeaves[T Ordered, N Binary[T, N]](n N) uint {
	var nilNode N
	if n == nilNode {
		return 0
	}
	l, r := n.Left(), n.Right()
	switch {
	case l == nilNode && r == nilNode:
		return 2
	case l == nilNode:
		return 1 + CountLeaves[T, N](r)
	case r == nilNode:
		return 1 + CountLeaves[T, N](l)
	default:
		return CountLeaves[T, N](l) + CountLeaves[T, N](r)
	}
}

// AppendInOrder appends the subtree's values to dst in ascending order.
func AppendInOrder[T Ordered, N Binary[T, N]](n N, dst []T) []T {
	var nilNode N
	if n == nilNode {
		return dst
	}
	dst = AppendInOrder(n.Left(), dst)
	dst = append(dst, n.Value())
	return AppendInOrder(n.Right(), dst)
}

// AppendPreOrder appends the subtree's values to dst in pre-order.
func AppendPreOrder[T Ordered, N Binary[T, N]](n N, dst []T) []T {
	var nilNode N
	if n == nilNode {
		return dst
	}
	dst = append(dst, n.Value())
	dst = AppendPreOrder(n.Left(), dst)
	return AppendPreOrder(n.Right(), dst)
}
