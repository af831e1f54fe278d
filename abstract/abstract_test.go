package abstract

import (
	"strconv"
	"strings"
	"testing"
)

type testNode struct {
	value int
	left  *testNode
	right *testNode
}

func (n *testNode) Left() *testNode  { return n.left }
func (n *testNode) Right() *testNode { return n.right }
func (n *testNode) Value() int       { return n.value }
func (n *testNode) Label() string    { return strconv.Itoa(n.value) }

func leaf(v int) *testNode { return &testNode{value: v} }

func assertEq[T comparable](t *testing.T, exp, got T) {
	t.Helper()
	if exp != got {
		t.Fatalf("expected %v, got %v", exp, got)
	}
}

// balanced three-node tree: 2 over 1 and 3
func threeNodes() *testNode {
	return &testNode{value: 2, left: leaf(1), right: leaf(3)}
}

func TestContains(t *testing.T) {
	root := threeNodes()
	for _, v := range []int{1, 2, 3} {
		if !Contains(root, v) {
			t.Fatalf("missing %d", v)
		}
	}
	for _, v := range []int{0, 4} {
		if Contains(root, v) {
			t.Fatalf("unexpected %d", v)
		}
	}

	var nilRoot *testNode
	if Contains(nilRoot, 1) {
		t.Fatal("contains on nil")
	}
}

func TestMinMax(t *testing.T) {
	root := threeNodes()
	root.left.left = leaf(0)
	root.right.right = leaf(9)

	v, ok := Min[int, *testNode](root)
	assertEq(t, true, ok)
	assertEq(t, 0, v)

	v, ok = Max[int, *testNode](root)
	assertEq(t, true, ok)
	assertEq(t, 9, v)

	var nilRoot *testNode
	_, ok = Min[int, *testNode](nilRoot)
	assertEq(t, false, ok)
	_, ok = Max[int, *testNode](nilRoot)
	assertEq(t, false, ok)
}

func TestHeight(t *testing.T) {
	// Absent children count one, so a lone node reports 2.
	assertEq(t, uint(2), Height[int, *testNode](leaf(1)))
	assertEq(t, uint(3), Height[int, *testNode](threeNodes()))

	chain := leaf(1)
	chain.right = leaf(2)
	chain.right.right = leaf(3)
	assertEq(t, uint(4), Height[int, *testNode](chain))
}

func TestCountLeaves(t *testing.T) {
	assertEq(t, uint(2), CountLeaves[int, *testNode](leaf(1)))
	assertEq(t, uint(4), CountLeaves[int, *testNode](threeNodes()))

	// One real child contributes the missing side plus its own count.
	one := leaf(1)
	one.right = leaf(2)
	assertEq(t, uint(3), CountLeaves[int, *testNode](one))

	var nilRoot *testNode
	assertEq(t, uint(0), CountLeaves[int, *testNode](nilRoot))
}

func TestTraversals(t *testing.T) {
	root := threeNodes()
	root.left.left = leaf(0)

	in := AppendInOrder[int, *testNode](root, nil)
	pre := AppendPreOrder[int, *testNode](root, nil)

	wantIn := []int{0, 1, 2, 3}
	wantPre := []int{2, 1, 0, 3}
	if len(in) != len(wantIn) || len(pre) != len(wantPre) {
		t.Fatalf("lengths: in=%v pre=%v", in, pre)
	}
	for i := range wantIn {
		assertEq(t, wantIn[i], in[i])
	}
	for i := range wantPre {
		assertEq(t, wantPre[i], pre[i])
	}

	var nilRoot *testNode
	if AppendInOrder[int, *testNode](nilRoot, nil) != nil {
		t.Fatal("expected nil slice")
	}
}

func TestSprint(t *testing.T) {
	var nilRoot *testNode
	assertEq(t, "", Sprint[int, *testNode](nilRoot))

	out := Sprint[int, *testNode](threeNodes())
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d:\n%s", len(lines), out)
	}
	assertEq(t, "2", strings.TrimSpace(lines[0]))
	assertEq(t, `/   \`, strings.TrimSpace(lines[1]))
	assertEq(t, "1       3", strings.TrimSpace(lines[2]))
}
