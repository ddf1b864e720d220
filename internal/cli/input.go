// Package cli handles an interactive line based session against a dictionary,
// mostly useful for exploring a word list and debugging suggestions.
package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	trie "github.com/sarthakjha889/go-trie-dictionary"
	"github.com/sarthakjha889/go-trie-dictionary/internal/logger"
)

const helpText = `commands:
  add <word>...      insert words
  del <word>...      delete words
  has <word>         exact lookup
  complete <prefix>  words starting with prefix (a bare line does the same)
  spell <word>       spelling suggestions
  list               every word
  tree               trie structure
  count              number of words
  help               this text
  quit               leave`

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler reads commands line by line and prints the dictionary's answers.
type InputHandler struct {
	dict            trie.Dictionary
	in              io.Reader
	out             *log.Logger
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	requestCount    int
}

// NewInputHandler creates a handler over dict reading from in and writing to out.
// limit caps listed words; zero means unlimited.
func NewInputHandler(dict trie.Dictionary, in io.Reader, out io.Writer, minLength, maxLength, limit int) *InputHandler {
	return &InputHandler{
		dict:            dict,
		in:              in,
		out:             logger.NewWithWriter(out, ""),
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
	}
}

// Start runs the loop until quit or end of input. A prompt is shown only when
// the input is a terminal.
func (h *InputHandler) Start() error {
	interactive := isTerminal(h.in)
	if interactive {
		h.out.Print("triedict CLI, type help for commands (Ctrl+C to exit)")
	}
	reader := bufio.NewReader(h.in)
	for {
		if interactive {
			h.out.Print("> ")
		}
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if !h.handleInput(line) {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput runs a single command line. It returns false when the session should end.
func (h *InputHandler) handleInput(line string) bool {
	h.requestCount++
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	start := time.Now()
	defer func() {
		log.Debugf("Took [ %v ] for %q", time.Since(start), line)
	}()

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		h.out.Print(helpText)
	case "add":
		for _, w := range args {
			if h.dict.Insert(w) {
				h.out.Printf("added %s", wordStyle.Render(w))
			} else {
				h.out.Warnf("%s is already present", w)
			}
		}
	case "del":
		for _, w := range args {
			if h.dict.Delete(w) {
				h.out.Printf("deleted %s", wordStyle.Render(w))
			} else {
				h.out.Warnf("%s is not present", w)
			}
		}
	case "has":
		if !h.needArg(cmd, args) {
			break
		}
		h.out.Print(args[0], "found", h.dict.Search(args[0]))
	case "complete":
		if !h.needArg(cmd, args) {
			break
		}
		h.complete(args[0])
	case "spell":
		if !h.needArg(cmd, args) {
			break
		}
		words, err := h.dict.SpellingSuggestions(args[0])
		if err != nil {
			h.out.Error(err)
			break
		}
		h.printWords("did you mean", args[0], words)
	case "list":
		h.printWords("all words", "", h.dict.AllWords())
	case "tree":
		h.out.Print("\n" + h.dict.Structure())
	case "count":
		h.out.Printf("%d words", h.dict.Len())
	default:
		if len(fields) == 1 {
			h.complete(fields[0])
			break
		}
		h.out.Errorf("Unknown command: %s (try help)", cmd)
	}
	return true
}

func (h *InputHandler) complete(prefix string) {
	n := len([]rune(prefix))
	if n < h.minPrefixLength {
		h.out.Errorf("Prefix too short: %s", prefix)
		return
	}
	if h.maxPrefixLength > 0 && n > h.maxPrefixLength {
		h.out.Errorf("Prefix too long: %s", prefix)
		return
	}
	h.printWords("completions", prefix, h.dict.AutoSuggest(prefix))
}

func (h *InputHandler) needArg(cmd string, args []string) bool {
	if len(args) == 0 {
		h.out.Errorf("%s needs a word", cmd)
		return false
	}
	return true
}

func (h *InputHandler) printWords(title, query string, words []string) {
	if len(words) == 0 {
		h.out.Warnf("No %s found for '%s'", title, query)
		return
	}
	total := len(words)
	if h.suggestLimit > 0 && total > h.suggestLimit {
		words = words[:h.suggestLimit]
	}
	h.out.Printf("Found %d %s for '%s':", total, title, query)
	for i, w := range words {
		h.out.Printf("%2d. %s", i+1, wordStyle.Render(w))
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
