package run

import (
	"fmt"
	"go/parser"
	"go/token"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// PackageDST parses the Go package in dir and returns its files as DST trees.
// Test files are skipped: mocks are generated from production interfaces.
func PackageDST(dir string) ([]*dst.File, *token.FileSet, error) {
	fset := token.NewFileSet()

	pkgs, err := parser.ParseDir(fset, dir, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse package in %s: %w", dir, err)
	}

	var files []*dst.File

	dec := decorator.NewDecorator(fset)

	for _, pkg := range pkgs {
		for name, file := range pkg.Files {
			if strings.HasSuffix(name, "_test.go") {
				continue
			}

			df, err := dec.DecorateFile(file)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to decorate %s: %w", name, err)
			}

			files = append(files, df)
		}
	}

	if len(files) == 0 {
		//nolint:err113 // validation error with dynamic context
		return nil, nil, fmt.Errorf("no Go source files found in %s", dir)
	}

	return files, fset, nil
}
