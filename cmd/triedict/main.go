/*
Command triedict serves a prefix tree dictionary over msgpack IPC or as an
interactive CLI.

Start the IPC server on stdin/stdout with a word list:

	triedict -words /usr/share/dict/words

Run the interactive CLI with debug logging:

	triedict -c -d -words words.txt

Settings come from a TOML or YAML file given with -config; flags override it.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	trie "github.com/sarthakjha889/go-trie-dictionary"
	"github.com/sarthakjha889/go-trie-dictionary/internal/cli"
	"github.com/sarthakjha889/go-trie-dictionary/internal/config"
	"github.com/sarthakjha889/go-trie-dictionary/internal/logger"
	"github.com/sarthakjha889/go-trie-dictionary/internal/server"
	"github.com/sarthakjha889/go-trie-dictionary/internal/wordlist"
)

const (
	Version = "0.1.0"
	AppName = "triedict"
)

// sigHandler exits normally on interrupt.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML or YAML config file")
	wordsPath := flag.String("words", "", "Word list to load, one word per line (overrides dict.word_list)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI instead of the IPC server")
	normalize := flag.Bool("nfc", false, "NFC-normalise word list entries (overrides dict.normalize)")
	limit := flag.Int("limit", -1, "Maximum words per reply, 0 for all (overrides suggest.limit)")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	logger.SetDebug(*debugMode)

	cfg, usedPath := config.LoadConfigWithPriority(*configPath)
	if *wordsPath != "" {
		cfg.Dict.WordList = *wordsPath
	}
	if *normalize {
		cfg.Dict.Normalize = true
	}
	if *limit >= 0 {
		cfg.Suggest.Limit = *limit
	}
	log.Debug("Config", "path", usedPath, "wordList", cfg.Dict.WordList,
		"maxDistance", cfg.Suggest.MaxDistance, "limit", cfg.Suggest.Limit)

	dict := trie.New().WithMaxDistance(cfg.Suggest.MaxDistance)
	if cfg.Dict.WordList != "" {
		stats, err := wordlist.LoadFile(cfg.Dict.WordList, dict, wordlist.Options{
			Normalize:    cfg.Dict.Normalize,
			SkipComments: cfg.Dict.SkipComments,
		})
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		log.Infof("Loaded %d words from %s", stats.Added, cfg.Dict.WordList)
	} else {
		log.Warn("No word list given, starting with an empty dictionary")
	}

	if *cliMode {
		handler := cli.NewInputHandler(dict, os.Stdin, os.Stdout, cfg.CLI.MinPrefix, cfg.CLI.MaxPrefix, cfg.Suggest.Limit)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC", "pid", os.Getpid(), "words", dict.Len())
	srv := server.NewServer(dict, os.Stdin, os.Stdout, cfg.Suggest.Limit)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)
	l.Print(AppName, "version", Version)
}
