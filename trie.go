package trie

import (
	"errors"
	"slices"

	"golang.org/x/exp/maps"
)

// DefaultMaxDistance is the largest Levenshtein distance at which a stored word
// is still offered as a spelling suggestion.
const DefaultMaxDistance = 2

// ErrEmptyWord is returned by SpellingSuggestions when the query has no first rune.
var ErrEmptyWord = errors.New("trie: spelling suggestions need a non-empty word")

// Trie is a prefix tree of strings supporting exact lookup, deletion,
// prefix completion and spelling suggestions.
// A Trie is not safe for concurrent use; see Locked.
type Trie struct {
	root        *node
	size        int
	maxDistance int
}

// node is a node in a Trie which contains a map of runes to more node pointers.
// terminal marks that a stored word ends exactly here.
type node struct {
	label    rune
	children map[rune]*node
	terminal bool
}

func newNode(label rune) *node {
	return &node{label: label, children: make(map[rune]*node)}
}

// New creates a new empty trie with the default suggestion distance.
func New() *Trie {
	t := new(Trie)
	t.root = newNode(0)
	t.maxDistance = DefaultMaxDistance
	return t
}

// WithMaxDistance sets the largest edit distance accepted by SpellingSuggestions.
// Negative values are treated as zero.
func (t *Trie) WithMaxDistance(d int) *Trie {
	t.maxDistance = max(d, 0)
	return t
}

// MaxDistance reports the spelling suggestion threshold.
func (t *Trie) MaxDistance() int {
	return t.maxDistance
}

// Len returns the number of words stored.
func (t *Trie) Len() int {
	return t.size
}

// Search reports whether word was inserted and not since deleted.
func (t *Trie) Search(word string) bool {
	n := t.walk(word)
	return n != nil && n.terminal
}

// Insert adds word, creating missing nodes along its path. It returns false
// and leaves the trie untouched if word is already present.
func (t *Trie) Insert(word string) bool {
	current := t.root
	for _, r := range word {
		child, ok := current.children[r]
		if !ok {
			child = newNode(r)
			current.children[r] = child
		}
		current = child
	}
	if current.terminal {
		return false
	}
	current.terminal = true
	t.size++
	return true
}

// InsertAll inserts every entry and returns how many of them were new.
func (t *Trie) InsertAll(entries ...string) int {
	added := 0
	for _, entry := range entries {
		if t.Insert(entry) {
			added++
		}
	}
	return added
}

// Delete removes word and prunes every node that no longer leads to a stored
// word. It returns false without modifying the trie if word is not present.
func (t *Trie) Delete(word string) bool {
	deleted, _ := t.root.remove([]rune(word))
	if deleted {
		t.size--
	}
	return deleted
}

// remove unmarks the word spelled by rest below n. prune tells the caller
// that n is now empty and should be unlinked from its parent.
func (n *node) remove(rest []rune) (deleted, prune bool) {
	if len(rest) == 0 {
		if !n.terminal {
			return false, false
		}
		n.terminal = false
		return true, len(n.children) == 0
	}
	child, ok := n.children[rest[0]]
	if !ok {
		return false, false
	}
	deleted, pruneChild := child.remove(rest[1:])
	if !pruneChild {
		return deleted, false
	}
	delete(n.children, rest[0])
	return true, !n.terminal && len(n.children) == 0
}

// AutoSuggest returns every stored word starting with prefix, in enumeration
// order. An empty prefix yields every word.
func (t *Trie) AutoSuggest(prefix string) []string {
	n := t.walk(prefix)
	if n == nil {
		return []string{}
	}
	return n.collect(prefix, []string{})
}

// AllWords returns every stored word in enumeration order.
func (t *Trie) AllWords() []string {
	return t.root.collect("", []string{})
}

// SpellingSuggestions returns the stored words sharing word's first rune whose
// Levenshtein distance to word is within the trie's maximum distance.
// Words starting with a different rune are never considered.
func (t *Trie) SpellingSuggestions(word string) ([]string, error) {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil, ErrEmptyWord
	}
	first, ok := t.root.children[runes[0]]
	if !ok {
		return []string{}, nil
	}
	suggestions := []string{}
	for _, candidate := range first.collect(string(runes[0]), nil) {
		if distance(runes, []rune(candidate)) <= t.maxDistance {
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions, nil
}

// walk follows word from the root and returns the node reached, or nil if an
// edge is missing.
func (t *Trie) walk(word string) *node {
	current := t.root
	for _, r := range word {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// collect appends the words of the subtree rooted at n to words. A terminal
// node contributes prefix before any of its descendants; children are visited
// in ascending rune order.
func (n *node) collect(prefix string, words []string) []string {
	if n.terminal {
		words = append(words, prefix)
	}
	for _, r := range n.sortedKeys() {
		words = n.children[r].collect(prefix+string(r), words)
	}
	return words
}

// sortedKeys returns the child labels in ascending order.
func (n *node) sortedKeys() []rune {
	keys := maps.Keys(n.children)
	slices.Sort(keys)
	return keys
}
