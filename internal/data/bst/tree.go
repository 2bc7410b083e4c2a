// Package bst implements data.Store as an unbalanced binary search tree keyed by
// song title. Shape depends only on insertion history; nothing is rebalanced.
package bst

import (
	"github.com/gdql/songsim/internal/data"
)

type node struct {
	song        data.Song
	left, right *node
}

// Tree is a binary search tree of songs ordered by title.
// The zero value is an empty tree ready to use.
type Tree struct {
	root *node
	size int
}

var _ data.Store = (*Tree)(nil)

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Insert adds song to the tree. A song whose title is already present replaces
// the stored song in place and no node is created.
func (t *Tree) Insert(song data.Song) bool {
	if t.root == nil {
		t.root = &node{song: song}
		t.size++
		return true
	}
	title := song.Title()
	cur := t.root
	for {
		curTitle := cur.song.Title()
		switch {
		case title == curTitle:
			cur.song = song
			return false
		case title < curTitle:
			if cur.left == nil {
				cur.left = &node{song: song}
				t.size++
				return true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = &node{song: song}
				t.size++
				return true
			}
			cur = cur.right
		}
	}
}

// Find returns the song stored under title, or nil if there is none.
func (t *Tree) Find(title string) *data.Song {
	cur := t.root
	for cur != nil {
		curTitle := cur.song.Title()
		if title == curTitle {
			return &cur.song
		}
		if title < curTitle {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

// Remove deletes the song stored under title and reports whether it was found.
func (t *Tree) Remove(title string) bool {
	var removed bool
	t.root = remove(t.root, title, &removed)
	if removed {
		t.size--
	}
	return removed
}

// remove deletes title from the subtree rooted at n and returns the new subtree root.
// A node with two children takes over its in-order successor's song, and the
// successor is then deleted from the right subtree.
func remove(n *node, title string, removed *bool) *node {
	if n == nil {
		return nil
	}
	curTitle := n.song.Title()
	switch {
	case title < curTitle:
		n.left = remove(n.left, title, removed)
	case title > curTitle:
		n.right = remove(n.right, title, removed)
	default:
		*removed = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		succ := minNode(n.right)
		n.song = succ.song
		n.right = remove(n.right, succ.song.Title(), removed)
	}
	return n
}

func minNode(n *node) *node {
	for n != nil && n.left != nil {
		n = n.left
	}
	return n
}

// All returns every stored song in ascending title order.
func (t *Tree) All() []*data.Song {
	out := make([]*data.Song, 0, t.size)
	return inorder(t.root, out)
}

func inorder(n *node, out []*data.Song) []*data.Song {
	if n == nil {
		return out
	}
	out = inorder(n.left, out)
	out = append(out, &n.song)
	return inorder(n.right, out)
}

// Titles returns every stored title in ascending order.
func (t *Tree) Titles() []string {
	songs := t.All()
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.Title()
	}
	return out
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return t.size }

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
