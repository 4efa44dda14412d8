//go:build targ

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/sh"
)

// Build builds the local mockgen binary.
func Build() error {
	fmt.Println("Building mockgen...")

	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("failed to create bin directory: %w", err)
	}

	return sh.Run("go", "build", "-o", "bin/mockgen", "./mockgen")
}

// Check runs all checks & fixes on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,          // clean up the module dependencies
		FixImports,    // remove unused imports before anything else reads the tree
		Generate,      // regenerate mocks so tests run against current interfaces
		Test,          // does our code work?
		ReorderDecls,  // linter will yell about declaration order if not correct
		Lint,
	)
}

// CheckForFail runs all checks on the code for determining whether any fail.
func CheckForFail() error {
	fmt.Println("Checking...")

	// Checks from fastest to slowest
	return targ.Deps(
		ReorderDeclsCheck,
		LintForFail,
		TestForFail,
	)
}

// FixImports fixes all imports in the codebase.
func FixImports() error {
	fmt.Println("Fixing imports...")
	return sh.Run("goimports", "-w", ".")
}

// Generate runs go generate using the locally-built mockgen binary.
func Generate() error {
	fmt.Println("Generating...")

	if err := targ.Deps(Build); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	binDir := filepath.Join(wd, "bin")

	err = os.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	if err != nil {
		return fmt.Errorf("failed to prepend %s to PATH: %w", binDir, err)
	}

	return sh.Run("go", "generate", "./...")
}

// Lint lints the code, fixing what it can.
func Lint() error {
	fmt.Println("Linting...")
	return sh.Run("golangci-lint", "run", "--fix", "./...")
}

// LintForFail lints the code for determining whether it fails.
func LintForFail() error {
	fmt.Println("Linting for failure...")
	return sh.Run("golangci-lint", "run", "./...")
}

// Mutate runs the mutation tests.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(TestForFail); err != nil {
		return err
	}

	return sh.Run(
		"go",
		"test",
		"-timeout=6000s",
		"-tags=mutation",
		"-ooze.v",
		".",
		"-run=TestMutation",
	)
}

// ReorderDecls reorders declarations in Go files per conventions.
func ReorderDecls() error {
	fmt.Println("Reordering declarations...")

	files, err := goFiles(".")
	if err != nil {
		return fmt.Errorf("failed to find Go files: %w", err)
	}

	reorderedCount := 0

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to reorder %s: %v\n", path, err)

			continue
		}

		if string(content) == reordered {
			continue
		}

		err = os.WriteFile(path, []byte(reordered), 0o600)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("  Reordered: %s\n", path)

		reorderedCount++
	}

	fmt.Printf("Reordered %d file(s).\n", reorderedCount)

	return nil
}

// ReorderDeclsCheck reports files whose declarations are out of order, without
// modifying them.
func ReorderDeclsCheck() error {
	fmt.Println("Checking declaration order...")

	files, err := goFiles(".")
	if err != nil {
		return fmt.Errorf("failed to find Go files: %w", err)
	}

	outOfOrder := 0

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to analyze %s: %v\n", path, err)

			continue
		}

		if string(content) == reordered {
			continue
		}

		outOfOrder++

		diff := textdiff.Unified(path+" (current)", path+" (reordered)", string(content), reordered)
		if diff != "" {
			fmt.Printf("\n%s\n", diff)
		}
	}

	if outOfOrder > 0 {
		return fmt.Errorf("%d file(s) need reordering", outOfOrder)
	}

	fmt.Println("All files are correctly ordered.")

	return nil
}

// Test runs the unit tests with coverage.
func Test() error {
	fmt.Println("Running unit tests...")

	return sh.Run(
		"go", "test",
		"-race",
		"-coverprofile=coverage.out",
		"-coverpkg=./...",
		"-count=1",
		"./...",
	)
}

// TestForFail runs all the tests for determining whether any fail.
func TestForFail() error {
	fmt.Println("Running unit tests for failure...")

	return sh.Run(
		"go", "test",
		"-race",
		"-count=1",
		"./...",
	)
}

// Tidy cleans up the module dependencies.
func Tidy() error {
	fmt.Println("Tidying...")
	return sh.Run("go", "mod", "tidy")
}

// goFiles returns the hand-written Go files in the tree, skipping generated
// mocks, vendored code, and hidden directories.
func goFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			name := entry.Name()
			if name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			if name == "vendor" || name == "bin" {
				return filepath.SkipDir
			}

			return nil
		}

		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "allocatormock.go") {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}
