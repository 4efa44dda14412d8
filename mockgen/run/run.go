// Package run implements the main logic for the mockgen tool in a testable way.
package run

import (
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/dave/dst"
)

// Interfaces - Public

// FileSystem interface for mocking.
type FileSystem interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader loads a package directory as DST files.
type PackageLoader interface {
	Load(dir string) ([]*dst.File, *token.FileSet, error)
}

// Structs - Private

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Interface string `arg:"positional,required" help:"interface name to mock (must be declared in the target directory's package)"`
	Name      string `arg:"--name"              help:"name for the generated mock (defaults to <Interface>Mock)"`
	Dir       string `arg:"--dir"               help:"directory of the package declaring the interface (defaults to .)"`
	Out       string `arg:"--out"               help:"output file name (defaults to <name, lowered>_test.go)"`
}

// Functions - Public

// Run executes the mockgen tool logic. It takes command-line arguments, an
// environment variable getter, a FileSystem for file operations, and a
// PackageLoader for parsing. On success it writes a Go source file containing
// a record/replay mock for the specified interface, into the package named by
// the GOPACKAGE environment variable (the package containing the
// //go:generate comment).
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	files, _, err := pkgLoader.Load(parsed.Dir)
	if err != nil {
		return err
	}

	iface, err := findInterface(files, parsed.Interface)
	if err != nil {
		return err
	}

	targetPackage := getEnv("GOPACKAGE")
	if targetPackage == "" {
		targetPackage = files[0].Name.Name
	}

	model, err := buildModel(iface, parsed.Interface, parsed.Name, targetPackage)
	if err != nil {
		return err
	}

	code, err := generateMockCode(model)
	if err != nil {
		return err
	}

	err = fileSys.WriteFile(parsed.Out, code, 0o644)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "wrote %s\n", parsed.Out)

	return nil
}

// Functions - Private

// parseArgs parses the command line and fills in defaults.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "mockgen"}, &parsed)
	if err != nil {
		return parsed, fmt.Errorf("failed to build argument parser: %w", err)
	}

	if len(args) > 0 {
		args = args[1:]
	}

	if err := parser.Parse(args); err != nil {
		return parsed, fmt.Errorf("failed to parse arguments: %w", err)
	}

	if parsed.Name == "" {
		parsed.Name = parsed.Interface + "Mock"
	}

	if parsed.Dir == "" {
		parsed.Dir = "."
	}

	if parsed.Out == "" {
		parsed.Out = strings.ToLower(parsed.Name) + "_test.go"
	}

	return parsed, nil
}

// findInterface locates the named interface declaration in the package files.
func findInterface(files []*dst.File, name string) (*dst.InterfaceType, error) {
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if !ok || typeSpec.Name.Name != name {
					continue
				}

				iface, ok := typeSpec.Type.(*dst.InterfaceType)
				if !ok {
					//nolint:err113 // validation error with dynamic context
					return nil, fmt.Errorf("type %s is not an interface", name)
				}

				return iface, nil
			}
		}
	}

	//nolint:err113 // validation error with dynamic context
	return nil, fmt.Errorf("interface %s not found in package", name)
}
