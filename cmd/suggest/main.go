// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command suggest loads a word list and prints prefix suggestions,
// a minimal driver for the tart trie.
//
//	suggest -w words.txt.gz -n 10 go gop
package main

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/gaissmai/tart"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:      "suggest",
		Usage:     "prefix suggestions from a word list",
		ArgsUsage: "prefix...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "words",
				Aliases:  []string{"w"},
				Required: true,
				Usage:    "word list, plain or gzipped, one word per line",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   10,
				Usage:   "max suggestions per prefix",
			},
			&cli.IntFlag{
				Name:  "leaf-limit",
				Value: tart.DefaultLeafLimit,
				Usage: "compact leaf capacity of the trie",
			},
			&cli.BoolFlag{
				Name:  "nfc",
				Value: true,
				Usage: "normalize words and prefixes to NFC",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("suggest failed")
	}
}

func run(c *cli.Context, log zerolog.Logger) error {
	trie := new(tart.Trie[int]).WithLeafLimit(c.Int("leaf-limit"))

	start := time.Now()
	n, err := load(trie, c.String("words"), c.Bool("nfc"))
	if err != nil {
		return err
	}
	log.Info().
		Int("words", n).
		Int("entries", trie.Size()).
		Dur("elapsed", time.Since(start)).
		Msg("word list loaded")

	limit := c.Int("limit")
	for _, prefix := range c.Args().Slice() {
		if c.Bool("nfc") {
			prefix = norm.NFC.String(prefix)
		}

		entries, err := trie.Suggest(prefix, limit)
		if err != nil {
			return fmt.Errorf("prefix %q: %w", prefix, err)
		}

		fmt.Printf("%s:\n", prefix)
		for _, e := range entries {
			fmt.Printf("  %s (line %d)\n", e.Key, e.Value)
		}
	}

	return nil
}

// load feeds the word list into the trie, the value of a word is its
// line number. Blank lines are skipped, duplicate words accumulate.
func load(trie *tart.Trie[int], fname string, nfc bool) (int, error) {
	file, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(fname, ".gz") {
		rgz, err := gzip.NewReader(file)
		if err != nil {
			return 0, err
		}
		defer rgz.Close()
		r = rgz
	}

	n := 0
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++

		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if nfc {
			word = norm.NFC.String(word)
		}

		if err := trie.Insert(word, lineNo); err != nil {
			return n, fmt.Errorf("line %d: %w", lineNo, err)
		}
		n++
	}

	return n, scanner.Err()
}
