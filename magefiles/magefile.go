// Package main contains Mage build targets for corpus-engine developer tooling.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories a local corpus run expects.
var projectDirs = []string{
	"corpus/raw",
	"corpus/cleaned",
	"reports",
}

// Init creates the project directory structure for a corpus run.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "corpus-engine"
	cmdPkg  = "./cmd/corpus-engine"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Report cleans corpus/raw into corpus/cleaned and writes the quality and
// table reports under reports/.
func Report() error {
	mg.Deps(Init, Build)
	bin := filepath.Join(binDir, binName)

	if err := sh.RunV(bin, "clean", "corpus/raw",
		"--output-dir", "corpus/cleaned",
		"--csv", "reports/quality.csv",
		"--summary", "reports/summary.yaml",
		"--mark-missing",
	); err != nil {
		return fmt.Errorf("clean: %w", err)
	}
	if err := sh.RunV(bin, "tables", "corpus/raw", "--csv", "reports/tables.csv"); err != nil {
		return fmt.Errorf("tables: %w", err)
	}
	return nil
}

// Stats prints non-blank Go lines, split into production and test code.
func Stats() error {
	prod, test, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Go lines (production): %d\n", prod)
	fmt.Printf("Go lines (tests):      %d\n", test)
	return nil
}

// countGoLines counts non-blank lines in .go files under root, skipping
// hidden and underscore directories, the corpus and bin.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "corpus" || name == binDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				n++
			}
		}
		if strings.HasSuffix(name, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}
