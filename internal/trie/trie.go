package trie

import (
	"fmt"
	"sort"
	"strings"
)

/*
Arena-based Trie Implementation

Sequences of comparable keys are stored in a prefix tree whose nodes live in a
single slice and reference each other by index instead of by pointer:

1. Memory Allocation Efficiency:
	- Nodes are appended to one contiguous slice, so inserting many
	sequences costs few separate allocations.
	- Child links are integer indices, which keeps nodes small.

2. Usage in this module:
	- The subformula analyzer inserts the preorder symbol sequence of every
	subtree of a formula. Preorder sequences identify valid formulas
	uniquely, so membership in the trie is structural equality against every
	stored subtree.
*/

// NodeIndex represents the index of a trie node.
type NodeIndex int

const root NodeIndex = 0

// Arena is a memory pool that stores all trie nodes.
type Arena[K comparable] struct {
	nodes []arenaNode[K]
	count int
}

// arenaNode is the internal representation of a trie node stored in the arena.
type arenaNode[K comparable] struct {
	// children maps the next key to the index of the child node.
	children map[K]NodeIndex
	// isEnd indicates whether a stored sequence ends at this node.
	isEnd bool
}

// NewArena creates a new arena holding only the root node.
func NewArena[K comparable]() *Arena[K] {
	arena := &Arena[K]{
		nodes: make([]arenaNode[K], 0, 64),
	}
	arena.nodes = append(arena.nodes, arenaNode[K]{children: make(map[K]NodeIndex)})
	return arena
}

func (a *Arena[K]) newNode() NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode[K]{children: make(map[K]NodeIndex)})
	return idx
}

// Insert stores sequence and reports whether it was not present before.
func (a *Arena[K]) Insert(sequence []K) bool {
	current := root

	for _, part := range sequence {
		childIdx, exists := a.nodes[current].children[part]
		if !exists {
			childIdx = a.newNode()
			// newNode may have grown the slice; index again
			a.nodes[current].children[part] = childIdx
		}
		current = childIdx
	}

	if a.nodes[current].isEnd {
		return false
	}
	a.nodes[current].isEnd = true
	a.count++
	return true
}

// Contains reports whether sequence was inserted.
func (a *Arena[K]) Contains(sequence []K) bool {
	current := root
	for _, part := range sequence {
		next, ok := a.nodes[current].children[part]
		if !ok {
			return false
		}
		current = next
	}
	return a.nodes[current].isEnd
}

// Len returns the number of distinct sequences stored.
func (a *Arena[K]) Len() int { return a.count }

// Equal checks whether two tries are identical in structure and content.
func (a *Arena[K]) Equal(b *Arena[K]) bool {
	if len(a.nodes) != len(b.nodes) || a.count != b.count {
		return false
	}
	return a.equalNodes(root, b, root)
}

func (a *Arena[K]) equalNodes(aIdx NodeIndex, b *Arena[K], bIdx NodeIndex) bool {
	nodeA := a.nodes[aIdx]
	nodeB := b.nodes[bIdx]

	if nodeA.isEnd != nodeB.isEnd || len(nodeA.children) != len(nodeB.children) {
		return false
	}

	for key, childA := range nodeA.children {
		childB, exists := nodeB.children[key]
		if !exists || !a.equalNodes(childA, b, childB) {
			return false
		}
	}
	return true
}

// DebugString returns a string representation of the trie for debugging purposes.
func (a *Arena[K]) DebugString() string {
	return a.debugStringNode(root)
}

func (a *Arena[K]) debugStringNode(idx NodeIndex) string {
	node := a.nodes[idx]
	var sb strings.Builder

	if node.isEnd {
		sb.WriteString("*")
	}

	// sort by printed key for a stable order
	type entry struct {
		label string
		child NodeIndex
	}
	entries := make([]entry, 0, len(node.children))
	for key, child := range node.children {
		entries = append(entries, entry{label: fmt.Sprint(key), child: child})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].label < entries[j].label })

	for _, e := range entries {
		sb.WriteString(e.label)
		sb.WriteString("(")
		sb.WriteString(a.debugStringNode(e.child))
		sb.WriteString(")")
	}

	return sb.String()
}

// Trie is a set of key sequences.
type Trie[K comparable] struct {
	arena *Arena[K]
}

// New returns an initialized Trie.
func New[K comparable]() *Trie[K] {
	return &Trie[K]{arena: NewArena[K]()}
}

// Insert stores sequence and reports whether it was new.
func (t *Trie[K]) Insert(sequence []K) bool { return t.arena.Insert(sequence) }

// Contains reports whether sequence is stored.
func (t *Trie[K]) Contains(sequence []K) bool { return t.arena.Contains(sequence) }

// Len returns the number of distinct sequences stored.
func (t *Trie[K]) Len() int { return t.arena.Len() }

// Equal checks whether two tries are identical in structure and content.
func (t *Trie[K]) Equal(other *Trie[K]) bool { return t.arena.Equal(other.arena) }

// DebugString returns a string representation of the trie for debugging purposes.
func (t *Trie[K]) DebugString() string { return t.arena.DebugString() }
