package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualCorrectness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func() (*Trie[string], *Trie[string])
		expectEq bool
	}{
		{
			name: "identical_empty_tries",
			setup: func() (*Trie[string], *Trie[string]) {
				return New[string](), New[string]()
			},
			expectEq: true,
		},
		{
			name: "identical_multiple_paths",
			setup: func() (*Trie[string], *Trie[string]) {
				t1, t2 := New[string](), New[string]()
				paths := [][]string{
					{"a", "b", "c"},
					{"a", "b", "d"},
					{"x", "y", "z"},
				}
				for _, path := range paths {
					t1.Insert(path)
					t2.Insert(path)
				}
				return t1, t2
			},
			expectEq: true,
		},
		{
			name: "different_paths",
			setup: func() (*Trie[string], *Trie[string]) {
				t1, t2 := New[string](), New[string]()
				t1.Insert([]string{"a", "b", "c"})
				t2.Insert([]string{"a", "b", "d"})
				return t1, t2
			},
			expectEq: false,
		},
		{
			name: "prefix_overlap",
			setup: func() (*Trie[string], *Trie[string]) {
				t1, t2 := New[string](), New[string]()
				t1.Insert([]string{"a", "b", "c"})
				t1.Insert([]string{"a", "b"})
				t2.Insert([]string{"a", "b", "c"})
				return t1, t2
			},
			expectEq: false,
		},
		{
			name: "different_order_same_result",
			setup: func() (*Trie[string], *Trie[string]) {
				t1, t2 := New[string](), New[string]()
				t1.Insert([]string{"a", "b", "c"})
				t1.Insert([]string{"x", "y", "z"})
				t2.Insert([]string{"x", "y", "z"})
				t2.Insert([]string{"a", "b", "c"})
				return t1, t2
			},
			expectEq: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t1, t2 := tt.setup()
			assert.Equal(t, tt.expectEq, t1.Equal(t2))
		})
	}
}

func TestInsertReportsNewSequences(t *testing.T) {
	t.Parallel()

	tr := New[rune]()
	assert.True(t, tr.Insert([]rune("pq")))
	assert.False(t, tr.Insert([]rune("pq")))
	assert.True(t, tr.Insert([]rune("p")))
	assert.Equal(t, 2, tr.Len())
}

func TestContains(t *testing.T) {
	t.Parallel()

	tr := New[int]()
	tr.Insert([]int{1, 2, 3})
	tr.Insert([]int{})

	assert.True(t, tr.Contains([]int{1, 2, 3}))
	assert.True(t, tr.Contains(nil), "empty sequence was inserted")
	assert.False(t, tr.Contains([]int{1, 2}), "prefix only")
	assert.False(t, tr.Contains([]int{1, 2, 3, 4}))
	assert.False(t, tr.Contains([]int{9}))
}

func TestDebugString(t *testing.T) {
	t.Parallel()

	arena := NewArena[string]()
	sequences := [][]string{
		{"a", "b", "c"},
		{"a", "b", "d"},
		{"a", "e"},
		{"f"},
	}
	for _, seq := range sequences {
		arena.Insert(seq)
	}

	assert.Equal(t, "a(b(c(*)d(*))e(*))f(*)", arena.DebugString())

	arena2 := NewArena[string]()
	for i := len(sequences) - 1; i >= 0; i-- {
		arena2.Insert(sequences[i])
	}
	assert.True(t, arena.Equal(arena2), "insertion order must not matter")
}
