/*
Package trie provides an in-memory string dictionary built on a prefix tree.
It supports exact lookup, insertion and deletion with pruning, prefix
autocompletion and "did you mean" spelling suggestions ranked by
Levenshtein distance.

Runes are compared exactly: there is no case folding or normalisation.
Enumeration is depth first, a word before its extensions, siblings in
ascending rune order, so every listing is reproducible.
*/
package trie
