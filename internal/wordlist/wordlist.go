// Package wordlist populates a dictionary from newline separated word lists.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"
)

// Inserter is the part of a dictionary the loader needs.
type Inserter interface {
	Insert(word string) bool
}

// Options control how lines are turned into words.
type Options struct {
	// Normalize converts each word to Unicode NFC before insertion so that
	// composed and decomposed spellings share one path.
	Normalize bool
	// SkipComments ignores lines whose first non-blank rune is '#'.
	SkipComments bool
}

// Stats summarises a load.
type Stats struct {
	Lines      int
	Added      int
	Duplicates int
	Skipped    int
}

// Load reads one word per line from r and inserts it into d. Surrounding
// whitespace is trimmed and blank lines are skipped.
func Load(r io.Reader, d Inserter, opts Options) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		word := strings.TrimSpace(scanner.Text())
		if word == "" || (opts.SkipComments && strings.HasPrefix(word, "#")) {
			stats.Skipped++
			continue
		}
		if opts.Normalize {
			word = norm.NFC.String(word)
		}
		if d.Insert(word) {
			stats.Added++
		} else {
			stats.Duplicates++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read word list at line %d: %w", stats.Lines+1, err)
	}
	return stats, nil
}

// LoadFile is Load reading from the file at path.
func LoadFile(path string, d Inserter, opts Options) (Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()

	stats, err := Load(file, d, opts)
	if err != nil {
		return stats, err
	}
	log.Debug("Loaded word list", "path", path, "lines", stats.Lines, "added", stats.Added,
		"duplicates", stats.Duplicates, "skipped", stats.Skipped)
	return stats, nil
}
