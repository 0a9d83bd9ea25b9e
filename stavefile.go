//go:build stave

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target when running `stave` with no arguments.
var Default = All

// Aliases for common targets.
var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"l": Lint,
	"c": Clean,
}

// All runs the complete build pipeline: lint, test, and build.
func All() error {
	st.Deps(Init)
	st.Deps(Lint, Test)
	st.Deps(Build)
	return nil
}

// Init ensures the module dependencies are up to date.
func Init() error {
	return sh.Run("go", "mod", "tidy")
}

// Build compiles both wordninja and wordninja-bench binaries.
func Build() error {
	st.Deps(Init)
	st.Deps(Build_CLI, Build_Bench)
	return nil
}

// Build_CLI compiles the wordninja binary with version information.
func Build_CLI() error {
	st.Deps(Init)

	// Check if rebuild is needed
	rebuild, err := target.Glob("bin/wordninja", "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Println("wordninja is up to date")
		}
		return nil
	}

	ldflags := buildLdflags()
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/wordninja", "./cmd/wordninja")
}

// Build_Bench compiles the wordninja-bench binary with version information.
func Build_Bench() error {
	st.Deps(Init)

	// Check if rebuild is needed
	rebuild, err := target.Glob("bin/wordninja-bench", "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Println("wordninja-bench is up to date")
		}
		return nil
	}

	ldflags := buildLdflags()
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/wordninja-bench", "./cmd/wordninja-bench")
}

// buildLdflags returns ldflags for version injection.
func buildLdflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	date := time.Now().Format(time.RFC3339)

	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		strings.TrimSpace(version),
		strings.TrimSpace(commit),
		date,
	)
}

// Test runs all tests with race detection and coverage.
func Test() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// TestShort runs tests in short mode (skips long-running tests).
func TestShort() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-short", "-race", "./...")
}

// TestVerbose runs tests with verbose output.
func TestVerbose() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "-v", "./...")
}

// TestCorpus runs the corpus accuracy test against testdata/corpus, or the
// directory in WORDNINJA_CORPUS.
func TestCorpus() error {
	st.Deps(Init)
	if err := os.Setenv("WORDNINJA_CORPUS", corpusDir()); err != nil {
		return fmt.Errorf("setting WORDNINJA_CORPUS: %w", err)
	}
	return sh.RunV("go", "test", "-v", "-run", "TestEvaluateCorpus", "./internal/bench")
}

// Lint runs golangci-lint on the codebase.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// LintFix runs golangci-lint with auto-fix enabled.
func LintFix() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code using gofmt and goimports.
func Fmt() error {
	if err := sh.Run("gofmt", "-w", "."); err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if err := sh.Run("goimports", "-w", "."); err != nil {
		return fmt.Errorf("goimports: %w", err)
	}
	return nil
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	artifacts := []string{
		"bin/",
		"wordninja-bench",
		"wordninja",
		"coverage.out",
		"coverage.html",
	}
	for _, a := range artifacts {
		if err := sh.Rm(a); err != nil {
			return fmt.Errorf("removing %s: %w", a, err)
		}
	}
	return nil
}

// Install builds and installs the binaries to GOBIN.
func Install() error {
	st.Deps(Build)

	gocmd := st.GoCmd()
	bin, err := sh.Output(gocmd, "env", "GOBIN")
	if err != nil {
		return fmt.Errorf("determining GOBIN: %w", err)
	}
	if bin == "" {
		gopath, err := sh.Output(gocmd, "env", "GOPATH")
		if err != nil {
			return fmt.Errorf("determining GOPATH: %w", err)
		}
		bin = gopath + "/bin"
	}

	binaries := []string{"wordninja", "wordninja-bench"}
	for _, name := range binaries {
		src := "bin/" + name
		dst := bin + "/" + name
		if runtime.GOOS == "windows" {
			dst += ".exe"
		}
		if err := sh.Copy(dst, src); err != nil {
			return fmt.Errorf("installing %s: %w", name, err)
		}
		if st.Verbose() {
			fmt.Printf("Installed %s to %s\n", name, dst)
		}
	}
	return nil
}

// Dict namespace for dictionary-related targets.
type Dict st.Namespace

// Build ranks the words of a text corpus into a gzip dictionary.
// Reads the .txt books and enwik* dumps in WORDNINJA_TEXT (default
// testdata/text) and writes WORDNINJA_DICT_OUT.
func (Dict) Build() error {
	textDir := os.Getenv("WORDNINJA_TEXT")
	if textDir == "" {
		textDir = "testdata/text"
	}
	out := os.Getenv("WORDNINJA_DICT_OUT")
	if out == "" {
		out = "dictionary/data/words.txt.gz"
	}

	if _, err := os.Stat(textDir); os.IsNotExist(err) {
		return fmt.Errorf("text directory not found: %s", textDir)
	}

	return sh.RunV("go", "run", "./scripts/build-dictionary.go", "-in", textDir, "-out", out)
}

// Snapshot converts a word list into the binary snapshot format.
func (Dict) Snapshot() error {
	in := os.Getenv("WORDNINJA_DICT")
	if in == "" {
		in = "dictionary/data/words.txt.gz"
	}
	out := os.Getenv("WORDNINJA_SNAPSHOT")
	if out == "" {
		out = "bin/words.wnd"
	}

	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("creating bin: %w", err)
	}
	return sh.RunV("go", "run", "./scripts/make-snapshot.go", "-in", in, "-out", out)
}

// Bench namespace for benchmark-related targets.
type Bench st.Namespace

// Run runs the benchmark tool against the test corpus.
// Uses the bundled dictionary unless WORDNINJA_DICT is set.
func (Bench) Run() error {
	st.Deps(Build_Bench)

	return sh.RunV("./bin/wordninja-bench",
		"-dict", os.Getenv("WORDNINJA_DICT"),
		"-corpus", corpusDir(),
	)
}

// Sweep runs a dictionary size sweep to find the best cutoff.
func (Bench) Sweep() error {
	st.Deps(Build_Bench)

	return sh.RunV("./bin/wordninja-bench",
		"-dict", os.Getenv("WORDNINJA_DICT"),
		"-corpus", corpusDir(),
		"-sweep",
	)
}

// Compare scores the bundled dictionary against each comma-separated path
// in WORDNINJA_DICTS.
func (Bench) Compare() error {
	st.Deps(Build_Bench)

	dicts := os.Getenv("WORDNINJA_DICTS")
	if dicts == "" {
		return fmt.Errorf("WORDNINJA_DICTS is not set")
	}

	return sh.RunV("./bin/wordninja-bench",
		"-corpus", corpusDir(),
		"-dicts", "bundled,"+dicts,
	)
}

func corpusDir() string {
	if dir := os.Getenv("WORDNINJA_CORPUS"); dir != "" {
		return dir
	}
	return "testdata/corpus"
}

// CI runs the full CI pipeline (lint, test, build).
func CI() error {
	st.Deps(Init)
	st.SerialDeps(Lint, Test, Build)
	return nil
}

// Check runs quick validation (vet, lint, short tests).
func Check() error {
	st.Deps(Vet, Lint, TestShort)
	return nil
}

// Coverage generates a coverage report.
func Coverage() error {
	st.Deps(Init)
	if err := sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Tidy runs go mod tidy and verifies the go.sum is clean.
func Tidy() error {
	if err := sh.Run("go", "mod", "tidy"); err != nil {
		return err
	}
	// Verify no changes to go.sum (useful for CI)
	output, err := sh.Output("git", "diff", "--exit-code", "go.sum")
	if err != nil {
		if output != "" {
			return fmt.Errorf("go.sum is not clean:\n%s", output)
		}
	}
	return nil
}
