//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main contains Mage build targets for forkify developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "forkify"
	cmdPkg  = "./cmd/forkify"
)

// Init creates the user configuration directory with an empty secrets
// directory and a starter config file.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}
	cfgDir := filepath.Join(home, ".config", "forkify")
	for _, dir := range []string{cfgDir, ".secrets"} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}

	cfgFile := filepath.Join(cfgDir, "forkify.yaml")
	if _, err := os.Stat(cfgFile); err == nil {
		fmt.Println("Config exists:", cfgFile)
		return nil
	}
	if err := os.WriteFile(cfgFile, []byte(starterConfig), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", cfgFile, err)
	}
	fmt.Println("Wrote", cfgFile)
	return nil
}

const starterConfig = `api:
  base_url: https://forkify-api.herokuapp.com/api/v2/recipes
  timeout: 10s
ui:
  results_per_page: 10
  modal_close: 2.5s
  no_color: false
`

// Build compiles the CLI binary into bin/.
func Build() error {
	mg.Deps(Vet)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if version == "" {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Vet runs go vet on every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the test suite with the race detector. The SQLite driver needs
// cgo.
func Test() error {
	return sh.RunWithV(map[string]string{"CGO_ENABLED": "1"}, "go", "test", "-race", "./...")
}

// Stats prints non-blank Go lines per package, split into production and
// test code.
func Stats() error {
	counts, err := countGoLines(".")
	if err != nil {
		return err
	}

	pkgs := make([]string, 0, len(counts))
	for p := range counts {
		pkgs = append(pkgs, p)
	}
	sort.Strings(pkgs)

	var prod, test int
	fmt.Printf("%-28s  %6s  %6s\n", "Package", "Prod", "Test")
	fmt.Println(strings.Repeat("-", 44))
	for _, p := range pkgs {
		c := counts[p]
		fmt.Printf("%-28s  %6d  %6d\n", p, c.prod, c.test)
		prod += c.prod
		test += c.test
	}
	fmt.Println(strings.Repeat("-", 44))
	fmt.Printf("%-28s  %6d  %6d\n", "total", prod, test)
	return nil
}

type lineCount struct{ prod, test int }

// countGoLines counts non-blank lines of Go files under root, keyed by
// directory. Hidden and underscore-prefixed directories are skipped.
func countGoLines(root string) (map[string]lineCount, error) {
	counts := make(map[string]lineCount)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
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
		n := nonBlankLines(data)

		dir := filepath.Dir(path)
		c := counts[dir]
		if strings.HasSuffix(name, "_test.go") {
			c.test += n
		} else {
			c.prod += n
		}
		counts[dir] = c
		return nil
	})
	return counts, err
}

func nonBlankLines(data []byte) int {
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n
}
