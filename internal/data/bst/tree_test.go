package bst

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/gdql/songsim/internal/data"
	"github.com/stretchr/testify/require"
)

func insertTitles(t *testing.T, tree *Tree, titles ...string) {
	t.Helper()
	for _, title := range titles {
		tree.Insert(data.NewSong(title, "text of "+title))
	}
}

func requireOrdered(t *testing.T, tree *Tree) {
	t.Helper()
	titles := tree.Titles()
	require.Len(t, titles, tree.Len())
	for i := 1; i < len(titles); i++ {
		require.Less(t, titles[i-1], titles[i], "in-order traversal must be strictly ascending")
	}
}

func TestTree_Empty(t *testing.T) {
	var tree Tree
	require.Zero(t, tree.Len())
	require.Zero(t, tree.Height())
	require.Empty(t, tree.All())
	require.Nil(t, tree.Find("anything"))
	require.False(t, tree.Remove("anything"))
}

func TestTree_Insert_OrderedTraversal(t *testing.T) {
	tree := New()
	insertTitles(t, tree, "Mango", "Apple", "Zebra", "Banana", "Cherry", "apple")
	require.Equal(t, []string{"Apple", "Banana", "Cherry", "Mango", "Zebra", "apple"}, tree.Titles())
	require.Equal(t, 6, tree.Len())
}

func TestTree_Insert_RandomSequencesStayOrdered(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 50; round++ {
		tree := New()
		seen := map[string]bool{}
		for i := 0; i < 40; i++ {
			title := string(rune('a'+rng.IntN(26))) + string(rune('a'+rng.IntN(26)))
			seen[title] = true
			tree.Insert(data.NewSong(title, title))
		}
		requireOrdered(t, tree)
		want := make([]string, 0, len(seen))
		for title := range seen {
			want = append(want, title)
		}
		sort.Strings(want)
		require.Equal(t, want, tree.Titles())
	}
}

func TestTree_Insert_SameTitleReplacesInPlace(t *testing.T) {
	tree := New()
	require.True(t, tree.Insert(data.NewSong("Alpha", "sun moon sun")))
	insertTitles(t, tree, "Beta", "Gamma")
	require.False(t, tree.Insert(data.NewSong("Alpha", "rain rain")))
	require.Equal(t, 3, tree.Len())

	got := tree.Find("Alpha")
	require.NotNil(t, got)
	require.Equal(t, "rain rain", got.Text())
	require.Equal(t, map[string]int{"rain": 2}, got.WordCounts())
}

func TestTree_Find(t *testing.T) {
	tree := New()
	insertTitles(t, tree, "Mango", "Apple", "Zebra")
	s := tree.Find("Apple")
	require.NotNil(t, s)
	require.Equal(t, "Apple", s.Title())
	require.Nil(t, tree.Find("apple"), "lookup is case-sensitive")
	require.Nil(t, tree.Find("Kiwi"))
}

func TestTree_Remove_Leaf(t *testing.T) {
	tree := New()
	insertTitles(t, tree, "M", "C", "X")
	require.True(t, tree.Remove("C"))
	require.Nil(t, tree.Find("C"))
	require.Equal(t, []string{"M", "X"}, tree.Titles())
	require.False(t, tree.Remove("C"))
	require.Equal(t, 2, tree.Len())
}

func TestTree_Remove_SingleChild(t *testing.T) {
	tree := New()
	insertTitles(t, tree, "M", "C", "A")
	require.True(t, tree.Remove("C"))
	require.Equal(t, []string{"A", "M"}, tree.Titles())
	require.NotNil(t, tree.Find("A"))
}

func TestTree_Remove_TwoChildren(t *testing.T) {
	tree := New()
	insertTitles(t, tree, "M", "D", "T", "B", "F", "E", "G", "R", "Z")
	before := map[string]string{}
	for _, s := range tree.All() {
		before[s.Title()] = s.Text()
	}

	require.True(t, tree.Remove("D"))
	require.Nil(t, tree.Find("D"))
	require.Equal(t, []string{"B", "E", "F", "G", "M", "R", "T", "Z"}, tree.Titles())
	// The successor "E" now sits where "D" was: directly left of the root.
	require.Equal(t, "E", tree.root.left.song.Title())
	for title, text := range before {
		if title == "D" {
			continue
		}
		s := tree.Find(title)
		require.NotNil(t, s, title)
		require.Equal(t, text, s.Text())
	}
	requireOrdered(t, tree)
}

func TestTree_Remove_Root(t *testing.T) {
	tree := New()
	insertTitles(t, tree, "M", "D", "T", "R")
	require.True(t, tree.Remove("M"))
	require.Equal(t, "R", tree.root.song.Title())
	require.Equal(t, []string{"D", "R", "T"}, tree.Titles())

	require.True(t, tree.Remove("R"))
	require.True(t, tree.Remove("D"))
	require.True(t, tree.Remove("T"))
	require.Zero(t, tree.Len())
	require.Nil(t, tree.root)
}

func TestTree_Remove_RandomKeepsInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	tree := New()
	present := map[string]bool{}
	for i := 0; i < 200; i++ {
		title := string(rune('a' + rng.IntN(20)))
		if rng.IntN(3) == 0 {
			require.Equal(t, present[title], tree.Remove(title))
			delete(present, title)
		} else {
			tree.Insert(data.NewSong(title, title))
			present[title] = true
		}
		requireOrdered(t, tree)
		require.Equal(t, len(present), tree.Len())
	}
}

func TestTree_Height_Degenerate(t *testing.T) {
	tree := New()
	insertTitles(t, tree, "a", "b", "c", "d", "e")
	require.Equal(t, 5, tree.Height(), "sorted insertion degenerates into a list")

	balanced := New()
	insertTitles(t, balanced, "d", "b", "f", "a", "c", "e", "g")
	require.Equal(t, 3, balanced.Height())
}
