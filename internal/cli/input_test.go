package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trie "github.com/sarthakjha889/go-trie-dictionary"
)

func run(t *testing.T, dict trie.Dictionary, input string, limit int) string {
	t.Helper()
	var out bytes.Buffer
	h := NewInputHandler(dict, strings.NewReader(input), &out, 1, 10, limit)
	require.NoError(t, h.Start())
	return out.String()
}

func TestSession(t *testing.T) {
	dict := trie.New()
	out := run(t, dict, strings.Join([]string{
		"add cat cats cot dog",
		"add cat",
		"has cats",
		"cat",
		"spell cat",
		"del cats",
		"del cats",
		"count",
		"list",
	}, "\n"), 0)

	assert.Equal(t, []string{"cat", "cot", "dog"}, dict.AllWords())
	assert.Contains(t, out, "cat is already present")
	assert.Contains(t, out, "found=true")
	assert.Contains(t, out, "Found 2 completions for 'cat'")
	assert.Contains(t, out, "Found 3 did you mean for 'cat'")
	assert.Contains(t, out, "cats is not present")
	assert.Contains(t, out, "3 words")
	assert.Contains(t, out, "Found 3 all words")
}

func TestSessionStopsAtQuit(t *testing.T) {
	dict := trie.New()
	run(t, dict, "add a\nquit\nadd b\n", 0)
	assert.Equal(t, []string{"a"}, dict.AllWords())
}

func TestSessionValidation(t *testing.T) {
	dict := trie.New()
	dict.InsertAll("ab", "abc", "abd")
	out := run(t, dict, "has\nspell\nfrobnicate now\nabcdefghijklmnop\nzzz\ncomplete a\ntree\n", 2)

	assert.Contains(t, out, "has needs a word")
	assert.Contains(t, out, "spell needs a word")
	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Prefix too long")
	assert.Contains(t, out, "No completions found for 'zzz'")
	assert.Contains(t, out, "Found 3 completions for 'a'")
	assert.Contains(t, out, " 2. abc")
	assert.NotContains(t, out, " 3. abd")
	assert.Contains(t, out, "root")
}
