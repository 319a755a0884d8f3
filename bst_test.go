package avltree

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avltree/testdata"
)

func TestBSTreeInsert(t *testing.T) {
	tree := NewOrderedBST[int]()
	node := tree.Insert(42)

	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, node, tree.Root())
	assert.Equal(t, 42, node.Data())
}

func TestBSTreeEmpty(t *testing.T) {
	tree := NewOrderedBST[int]()

	assert.Nil(t, tree.Root())
	assert.Nil(t, tree.Find(1))
	assert.False(t, tree.Contains(1))
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, -1, tree.Height())
	assert.Equal(t, 0, tree.Width())
	assert.Nil(t, tree.Min())
	assert.Nil(t, tree.Max())
	assert.Empty(t, tree.ToSlice())
}

func TestBSTreeInsertExistingReturnsSameNode(t *testing.T) {
	tree := NewOrderedBST[string]()

	first := tree.Insert("hello")
	tree.Insert("world")
	second := tree.Insert("hello")

	assert.Same(t, first, second)
	assert.Equal(t, 2, tree.Size())
}

func TestBSTreeShape(t *testing.T) {
	tree := BSTFrom([]int{3, 4, 1, 0, 2}, Ordered[int])

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, 3, root.Data())
	assert.Equal(t, 1, root.Left().Data())
	assert.Equal(t, 4, root.Right().Data())
	assert.Equal(t, 0, root.Left().Left().Data())
	assert.Equal(t, 2, root.Left().Right().Data())
	assert.Same(t, root, tree.Find(3))
	assert.True(t, IsLinked[int](tree))
}

func TestBSTreeDeleteRootWithTwoChildren(t *testing.T) {
	tree := BSTFrom([]int{3, 4, 1, 0, 2}, Ordered[int])
	removed := tree.Find(3)

	res := tree.Delete(3)

	assert.True(t, res.Success)
	require.NotNil(t, res.Anchor)
	assert.Equal(t, 4, res.Anchor.Data())
	assert.Equal(t, 4, tree.Size())
	assert.Nil(t, tree.Find(3))
	assert.Equal(t, 4, tree.Root().Data())
	assert.Equal(t, []int{0, 1, 2, 4}, tree.ToSlice())
	assert.True(t, IsLinked[int](tree))

	assert.Nil(t, removed.Parent())
	assert.Nil(t, removed.Left())
	assert.Nil(t, removed.Right())
}

func TestBSTreeDeleteWithDeepSuccessor(t *testing.T) {
	tree := BSTFrom([]int{2, 0, 5, 1, 3, 6, 4}, Ordered[int])

	res := tree.Delete(2)

	assert.True(t, res.Success)
	require.NotNil(t, res.Anchor)
	assert.Equal(t, 5, res.Anchor.Data())
	assert.Equal(t, []int{0, 1, 3, 4, 5, 6}, tree.ToSlice())
	assert.Equal(t, 3, tree.Root().Data())
	assert.Nil(t, tree.Root().Parent())
	assert.Equal(t, 4, tree.Find(5).Left().Data())
	assert.True(t, IsLinked[int](tree))
	assert.True(t, IsOrdered[int](tree))
}

func TestBSTreeDeleteLeaf(t *testing.T) {
	tree := BSTFrom([]int{3, 4, 1, 0, 2}, Ordered[int])

	res := tree.Delete(2)

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Anchor.Data())
	assert.Nil(t, tree.Find(1).Right())
	assert.True(t, IsLinked[int](tree))
}

func TestBSTreeDeleteSingleChild(t *testing.T) {
	tree := BSTFrom([]int{3, 1, 0, 4, 5}, Ordered[int])

	res := tree.Delete(1)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.Anchor.Data())
	assert.Equal(t, tree.Root(), res.Anchor.Parent())

	res = tree.Delete(4)
	assert.True(t, res.Success)
	assert.Equal(t, 5, res.Anchor.Data())
	assert.Equal(t, tree.Root(), res.Anchor.Parent())

	res = tree.Delete(3)
	assert.True(t, res.Success)
	assert.Equal(t, []int{0, 5}, tree.ToSlice())
	assert.True(t, IsLinked[int](tree))
}

func TestBSTreeDeleteRootWithOneChild(t *testing.T) {
	tree := BSTFrom([]int{1, 2}, Ordered[int])

	res := tree.Delete(1)

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Anchor.Data())
	assert.Equal(t, res.Anchor, tree.Root())
	assert.Nil(t, tree.Root().Parent())
}

func TestBSTreeDeleteLastNode(t *testing.T) {
	tree := BSTFrom([]int{1}, Ordered[int])

	res := tree.Delete(1)

	assert.True(t, res.Success)
	assert.Nil(t, res.Anchor)
	assert.Nil(t, tree.Root())
	assert.Equal(t, -1, tree.Height())
}

func TestBSTreeDeleteNotFound(t *testing.T) {
	tree := BSTFrom([]int{3, 4, 1, 0, 2}, Ordered[int])

	for i := 0; i < 2; i++ {
		res := tree.Delete(7)
		assert.False(t, res.Success)
		assert.Nil(t, res.Anchor)
		assert.Equal(t, 5, tree.Size())
		assert.Equal(t, []int{0, 1, 2, 3, 4}, tree.ToSlice())
	}

	res := NewOrderedBST[int]().Delete(7)
	assert.Equal(t, DeleteResult[int]{}, res)
}

func TestBSTreeCustomComparator(t *testing.T) {
	reverse := func(a, b int) int { return Ordered(b, a) }
	tree := BSTFrom([]int{1, 5, 3, 2, 4}, reverse)

	assert.Equal(t, []int{5, 4, 3, 2, 1}, tree.ToSlice())
	assert.Equal(t, 5, tree.Min().Data())
	assert.Equal(t, 1, tree.Max().Data())
	assert.True(t, IsOrdered[int](tree))
}

func TestBSTreeNilComparatorPanics(t *testing.T) {
	assert.Panics(t, func() { NewBST[int](nil) })
}

func TestInsertManyWordsAndEnsureFindAndMinimumMaximum(t *testing.T) {
	tree := NewBST[string](strings.Compare)

	words := testdata.LoadTestFile("testdata/data/words.txt")

	for _, w := range words {
		tree.Insert(w)
	}

	for _, w := range words {
		res := tree.Find(w)
		require.NotNil(t, res)
		assert.Equal(t, w, res.Data())
	}

	assert.Equal(t, len(words), tree.Size())
	assert.Equal(t, "ASCII", tree.Min().Data())
	assert.Equal(t, "zythum", tree.Max().Data())

	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	assert.Equal(t, sorted, tree.ToSlice())
}

// runWorkload applies random inserts and deletes to tree and checks it
// against a map after every step.
func runWorkload(t *testing.T, tree Tree[int], seed int64, ops int, check func()) {
	r := rand.New(rand.NewSource(seed))
	present := make(map[int]bool)

	for i := 0; i < ops; i++ {
		key := r.Intn(200)
		if r.Intn(3) == 0 {
			res := tree.Delete(key)
			assert.Equal(t, present[key], res.Success, "delete %d", key)
			delete(present, key)
		} else {
			node := tree.Insert(key)
			assert.Equal(t, key, node.Data())
			present[key] = true
		}

		require.True(t, IsLinked(tree), "links after op %d", i)
		require.True(t, IsOrdered(tree), "order after op %d", i)
		require.Equal(t, len(present), tree.Size())
		if check != nil {
			check()
		}
	}

	keys := make([]int, 0, len(present))
	for k := range present {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	assert.Equal(t, keys, tree.ToSlice())
	if len(keys) == 0 {
		assert.Equal(t, -1, tree.Height())
	}
}

func TestBSTreeRandomWorkload(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		runWorkload(t, NewOrderedBST[int](), seed, 2000, nil)
	}
}
