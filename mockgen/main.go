// unitest/mockgen is a tool to generate record/replay test mocks for Go
// interfaces. To use it, install it with
// `go install github.com/toejough/unitest/mockgen@latest`
// and in your source files, add a `//go:generate mockgen <Interface>` comment
// for the interface you want mocked. By default, the mock struct will be
// named <Interface>Mock and written to <interfacemock>_test.go in the package
// containing the `//go:generate` comment. Add `--name <mockname>` and
// `--out <file>` flags to override either.
package main

import (
	"fmt"
	"go/token"
	"os"

	"github.com/dave/dst"
	"github.com/toejough/unitest/mockgen/run"
)

// main is the entry point of the mockgen tool.
func main() {
	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using the os package.
type realFileSystem struct{}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader using direct DST parsing.
type realPackageLoader struct{}

// Load parses the package in dir and returns its DST files and FileSet.
func (pl *realPackageLoader) Load(dir string) ([]*dst.File, *token.FileSet, error) {
	files, fset, err := run.PackageDST(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}

	return files, fset, nil
}
