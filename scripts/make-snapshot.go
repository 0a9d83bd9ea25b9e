//go:build ignore

// Convert a word list into a binary dictionary snapshot (.wnd).
// Usage: go run ./scripts/make-snapshot.go -in words.txt.gz -out words.wnd
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/go-wordninja/dictionary"
	"github.com/jamesainslie/go-wordninja/lexicon"
)

func main() {
	var (
		in   = flag.String("in", "", "Input word list (default: bundled dictionary)")
		out  = flag.String("out", "words"+dictionary.SnapshotExt, "Output snapshot path")
		name = flag.String("name", "", "Snapshot name (default: input file name)")
	)
	flag.Parse()

	var (
		list *dictionary.List
		err  error
	)
	if *in == "" {
		list, err = dictionary.Default()
	} else {
		list, err = dictionary.Load(*in)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word list: %v\n", err)
		os.Exit(1)
	}

	// Reject lists the splitter would refuse.
	model, err := lexicon.New(list.Words)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building model: %v\n", err)
		os.Exit(1)
	}

	snapshotName := *name
	if snapshotName == "" {
		snapshotName = dictionary.DefaultName
		if *in != "" {
			snapshotName = filepath.Base(*in)
		}
	}

	if !strings.HasSuffix(*out, dictionary.SnapshotExt) {
		fmt.Fprintf(os.Stderr, "Warning: %s lacks the %s extension and will load as a word list\n", *out, dictionary.SnapshotExt)
	}

	snap := dictionary.Snapshot{Name: snapshotName, Words: list.Words}
	if err := dictionary.WriteSnapshot(*out, snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Read %s (%s, %d entries)\n", snapshotName, list.Format, len(list.Words))
	fmt.Printf("  -> %s (%d distinct words, longest %d)\n", *out, model.Len(), model.MaxWordLen())
}
