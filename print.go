package trie

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/tree"
)

// Structure renders the trie as a box-drawn tree headed by "root". Children
// appear in ascending rune order, so the output is reproducible.
func (t *Trie) Structure() string {
	root := tree.Root("root")
	for _, r := range t.root.sortedKeys() {
		root.Child(t.root.children[r].branch())
	}
	return root.String()
}

// PrintStructure writes Structure to w followed by a newline.
func (t *Trie) PrintStructure(w io.Writer) error {
	_, err := fmt.Fprintln(w, t.Structure())
	return err
}

// branch returns a leaf label or a subtree for n.
func (n *node) branch() any {
	if len(n.children) == 0 {
		return string(n.label)
	}
	sub := tree.Root(string(n.label))
	for _, r := range n.sortedKeys() {
		sub.Child(n.children[r].branch())
	}
	return sub
}
