package llrb

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireValid checks the invariants that must hold after every completed
// operation: uniform black-height and a black root.
func requireValid(t *testing.T, tree *Tree[int]) {
	t.Helper()
	require.True(t, tree.IsValid(), "black-height mismatch")
	if tree.root != nil {
		require.Equal(t, black, tree.root.color, "root must be black")
	}
}

func TestTraversal(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	for _, v := range []int{0, 16, 16, 8, 24, 20, 22} {
		tree.Insert(v)
	}

	require.Equal(t, []int{20, 8, 0, 16, 24, 22}, tree.PreOrder())
	require.Equal(t, []int{0, 8, 16, 20, 22, 24}, tree.InOrder())
}

func TestInsertValid(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	keys := []int{12, 1, 9, 2, 0, 11, 7, 19, 4, 15, 18, 5, 14, 13, 10, 16, 6, 3, 8, 17}
	for _, v := range keys {
		tree.Insert(v)
		requireValid(t, tree)
	}

	for _, v := range keys {
		assert.True(t, tree.Contains(v), "missing %d", v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, tree.InOrder())
}

func TestEmptyTree(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	require.True(t, tree.IsEmpty())
	require.False(t, tree.Contains(1))

	_, ok := tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)

	tree.Delete(1)
	require.True(t, tree.IsEmpty())
	requireValid(t, tree)
	require.Zero(t, tree.Height())
	require.Zero(t, tree.CountLeaves())
}

func TestDuplicateInsert(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	for i := 0; i < 3; i++ {
		tree.Insert(7)
		tree.Insert(3)
	}

	require.Equal(t, []int{3, 7}, tree.InOrder())
	requireValid(t, tree)
}

func TestOrderingRoundTrip(t *testing.T) {
	t.Parallel()

	const n = 1000
	tree := New[int]()
	r := rand.New(rand.NewSource(1))

	inserted := map[int]bool{}
	for i := 0; i < n; i++ {
		v := r.Intn(n / 2) // force duplicates
		tree.Insert(v)
		inserted[v] = true
		requireValid(t, tree)
	}

	want := make([]int, 0, len(inserted))
	for v := range inserted {
		want = append(want, v)
	}
	sort.Ints(want)
	require.Equal(t, want, tree.InOrder())
}

func TestDeleteAll(t *testing.T) {
	t.Parallel()

	const n = 500
	tree := New[int]()
	for _, v := range rand.New(rand.NewSource(2)).Perm(n) {
		tree.Insert(v)
	}

	for _, v := range rand.New(rand.NewSource(3)).Perm(n) {
		tree.Delete(v)
		requireValid(t, tree)
		assert.False(t, tree.Contains(v), "still contains %d", v)
	}

	require.True(t, tree.IsEmpty())
	_, ok := tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)
}

func TestDeleteAbsent(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	for v := 0; v < 100; v += 2 {
		tree.Insert(v)
	}
	before := tree.InOrder()

	for v := -5; v < 105; v += 2 {
		if v%2 != 0 || v < 0 || v >= 100 {
			tree.Delete(v)
		}
	}
	tree.Delete(-1)
	tree.Delete(999)

	require.Equal(t, before, tree.InOrder())
	requireValid(t, tree)
	for v := 0; v < 100; v += 2 {
		assert.True(t, tree.Contains(v))
	}
}

func TestDeleteBlackLeaf(t *testing.T) {
	t.Parallel()

	// Deleting a black leaf forces moveRedLeft to push a red link down
	// from the entry state (red node, two black children); the recolor
	// there must invert, or the black heights drift apart.
	tree := New[int]()
	for _, v := range []int{2, 0, 5} {
		tree.Insert(v)
	}

	tree.Delete(0)
	requireValid(t, tree)
	require.Equal(t, []int{2, 5}, tree.InOrder())

	tree.Delete(3)
	requireValid(t, tree)
	require.Equal(t, []int{2, 5}, tree.InOrder())
}

func TestExhaustiveSmallSequences(t *testing.T) {
	t.Parallel()

	const n = 5
	perms := permutations(n)
	for _, ins := range perms {
		tree := New[int]()
		for _, v := range ins {
			tree.Insert(v)
			requireValid(t, tree)
		}
		for _, del := range perms {
			cp := tree.Clone()
			for _, v := range del {
				cp.Delete(v)
				requireValid(t, cp)
			}
			require.True(t, cp.IsEmpty(), "insert %v delete %v", ins, del)
		}
	}
}

// permutations returns every ordering of 0..n-1.
func permutations(n int) [][]int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}

	var out [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			out = append(out, append([]int(nil), vals...))
			return
		}
		for i := k; i < n; i++ {
			vals[k], vals[i] = vals[i], vals[k]
			rec(k + 1)
			vals[k], vals[i] = vals[i], vals[k]
		}
	}
	rec(0)

	return out
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	for _, v := range []int{5, 1, 9, 3, 7} {
		tree.Insert(v)
	}

	minKey, ok := tree.Min()
	require.True(t, ok)
	require.Equal(t, 1, minKey)

	maxKey, ok := tree.Max()
	require.True(t, ok)
	require.Equal(t, 9, maxKey)
}

func TestHeightAndLeaves(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	tree.Insert(1)
	// A lone node sits above two nil leaves.
	require.Equal(t, uint(2), tree.Height())
	require.Equal(t, uint(2), tree.CountLeaves())

	tree.Insert(2)
	require.Equal(t, uint(3), tree.Height())
	require.Equal(t, uint(3), tree.CountLeaves())

	tree.Insert(3)
	require.Equal(t, uint(4), tree.CountLeaves())
}

func TestHeightLogarithmic(t *testing.T) {
	t.Parallel()

	const n = 4096
	tree := New[int]()
	for v := 0; v < n; v++ {
		tree.Insert(v)
	}

	// 2*log2(n+1) red-black height bound, plus the nil-counts-one offset.
	require.LessOrEqual(t, tree.Height(), uint(2*13+1))
	requireValid(t, tree)
}

func TestClone(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	for _, v := range rand.New(rand.NewSource(4)).Perm(200) {
		tree.Insert(v)
	}
	snapshot := tree.InOrder()

	cp := tree.Clone()
	for v := 0; v < 200; v += 2 {
		cp.Delete(v)
	}
	cp.Insert(1000)

	require.Equal(t, snapshot, tree.InOrder(), "mutating the clone leaked into the original")
	requireValid(t, tree)
	requireValid(t, cp)
	require.False(t, tree.Contains(1000))
}

func TestSprint(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	require.Empty(t, tree.Sprint())

	tree.Insert(2)
	tree.Insert(1)
	tree.Insert(3)

	out := tree.Sprint()
	require.Contains(t, out, "2b")
	require.Contains(t, out, "1")
	require.Contains(t, out, "3")
	require.Contains(t, out, "/")
	require.Contains(t, out, `\`)
}

func TestStringKeys(t *testing.T) {
	t.Parallel()

	tree := New[string]()
	for _, v := range []string{"pear", "apple", "fig", "plum", "date"} {
		tree.Insert(v)
	}

	require.Equal(t, []string{"apple", "date", "fig", "pear", "plum"}, tree.InOrder())
	require.True(t, tree.Contains("fig"))
	require.False(t, tree.Contains("kiwi"))
}
