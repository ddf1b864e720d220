package trie

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocked(t *testing.T) {
	t.Run("nil trie gets a fresh one", func(t *testing.T) {
		l := NewLocked(nil)
		assert.True(t, l.Insert("go"))
		assert.True(t, l.Search("go"))
		assert.Equal(t, 1, l.Len())
	})

	t.Run("concurrent writers and readers", func(t *testing.T) {
		l := NewLocked(New())
		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					word := fmt.Sprintf("w%d-%d", w, i)
					l.Insert(word)
					l.AutoSuggest(fmt.Sprintf("w%d", w))
					if i%2 == 0 {
						l.Delete(word)
					}
				}
			}(w)
		}
		wg.Wait()
		assert.Equal(t, 400, l.Len())
		assert.Len(t, l.AllWords(), 400)
		got, err := l.SpellingSuggestions("w0-1")
		require.NoError(t, err)
		assert.Contains(t, got, "w0-1")
		assert.Equal(t, 2, l.InsertAll("x", "y", "x"))
		assert.Contains(t, l.Structure(), "root")
	})
}
