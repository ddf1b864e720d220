package trie

import (
	"io"
	"sync"
)

// Dictionary is the operation set shared by Trie and Locked.
type Dictionary interface {
	Search(word string) bool
	Insert(word string) bool
	Delete(word string) bool
	AutoSuggest(prefix string) []string
	AllWords() []string
	SpellingSuggestions(word string) ([]string, error)
	Structure() string
	Len() int
}

var (
	_ Dictionary = (*Trie)(nil)
	_ Dictionary = (*Locked)(nil)
)

// Locked guards a Trie with a single lock so it can be shared between goroutines.
// Delete restructures nodes in place, so every operation holds the lock.
type Locked struct {
	mu sync.RWMutex
	t  *Trie
}

// NewLocked wraps t. The caller must not use t directly afterwards.
func NewLocked(t *Trie) *Locked {
	if t == nil {
		t = New()
	}
	return &Locked{t: t}
}

func (l *Locked) Search(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Search(word)
}

func (l *Locked) Insert(word string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Insert(word)
}

// InsertAll inserts entries under a single lock acquisition.
func (l *Locked) InsertAll(entries ...string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.InsertAll(entries...)
}

func (l *Locked) Delete(word string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Delete(word)
}

func (l *Locked) AutoSuggest(prefix string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.AutoSuggest(prefix)
}

func (l *Locked) AllWords() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.AllWords()
}

func (l *Locked) SpellingSuggestions(word string) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.SpellingSuggestions(word)
}

func (l *Locked) Structure() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Structure()
}

func (l *Locked) PrintStructure(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.PrintStructure(w)
}

func (l *Locked) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Len()
}
