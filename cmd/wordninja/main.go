package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	wordninja "github.com/jamesainslie/go-wordninja"
)

// Set via -ldflags by the build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	dictPath := flag.String("dict", "", "Path to dictionary file (default: bundled English list)")
	mode := flag.String("mode", "join", "Mode: join or words")
	verbose := flag.Bool("v", false, "Log dictionary loading to stderr")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("wordninja %s (%s, %s)\n", version, commit, date)
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	s, err := wordninja.New(*dictPath, wordninja.WithLogger(logger), wordninja.WithPoolSize(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating splitter: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = s.Close() }() // Cleanup error ignored in CLI

	ctx := context.Background()

	inputs := flag.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: wordninja [-dict DICTIONARY] [OPTIONS] TEXT...")
		flag.PrintDefaults()
		os.Exit(1)
	}

	for _, text := range inputs {
		switch *mode {
		case "join":
			out, err := s.Split(ctx, text)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(out)

		case "words":
			words, err := s.SplitWords(ctx, text)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Text: %q\n", text)
			fmt.Printf("Words (%d):\n", len(words))
			for i, w := range words {
				fmt.Printf("  %d: %q\n", i+1, w)
			}

		default:
			fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
			os.Exit(1)
		}
	}
}
