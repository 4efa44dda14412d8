package run

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/dave/dst"
)

// mockModel holds everything codegen needs about the target interface.
type mockModel struct {
	Package   string
	Interface string
	MockName  string
	ImplName  string
	Methods   []methodModel
}

// methodModel describes one interface method.
type methodModel struct {
	Name     string
	Params   []param
	Results  []string
	Variadic bool // last param is variadic; its Type is the element type
}

type param struct {
	Name string
	Type string
}

// codeWriter provides common buffer writing functionality for the generator.
type codeWriter struct {
	buf bytes.Buffer
}

// pf writes a formatted string to the buffer.
func (w *codeWriter) pf(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
}

// buildModel converts a parsed interface declaration into a mockModel.
func buildModel(iface *dst.InterfaceType, ifaceName, mockName, pkg string) (*mockModel, error) {
	model := &mockModel{
		Package:   pkg,
		Interface: ifaceName,
		MockName:  mockName,
		ImplName:  lowerFirst(mockName) + "Impl",
	}

	for _, field := range iface.Methods.List {
		if len(field.Names) == 0 {
			//nolint:err113 // validation error with dynamic context
			return nil, fmt.Errorf("interface %s embeds another interface; embedding is not supported", ifaceName)
		}

		ftype, ok := field.Type.(*dst.FuncType)
		if !ok {
			//nolint:err113 // validation error with dynamic context
			return nil, fmt.Errorf("interface %s has a non-method member", ifaceName)
		}

		for _, name := range field.Names {
			method, err := buildMethod(name.Name, ftype)
			if err != nil {
				return nil, fmt.Errorf("method %s: %w", name.Name, err)
			}

			model.Methods = append(model.Methods, method)
		}
	}

	if len(model.Methods) == 0 {
		//nolint:err113 // validation error with dynamic context
		return nil, fmt.Errorf("interface %s has no methods", ifaceName)
	}

	if err := checkReservedNames(model); err != nil {
		return nil, err
	}

	return model, nil
}

// checkReservedNames rejects interface methods whose names would collide with
// identifiers the generated mock declares itself: method names become struct
// fields, so they must not shadow the ctrl field, the Interface accessor, the
// impl's mock field, or another method's Expect* wrapper.
func checkReservedNames(model *mockModel) error {
	reserved := map[string]string{
		"ctrl":      "the mock's ctrl field",
		"Interface": "the mock's Interface method",
		"mock":      "the implementation's mock field",
	}

	for _, method := range model.Methods {
		reserved["Expect"+method.Name] = "the Expect" + method.Name + " wrapper"
	}

	for _, method := range model.Methods {
		if what, ok := reserved[method.Name]; ok {
			//nolint:err113 // validation error with dynamic context
			return fmt.Errorf("method %s collides with %s in the generated mock; rename the method or mock a narrower interface",
				method.Name, what)
		}
	}

	return nil
}

func buildMethod(name string, ftype *dst.FuncType) (methodModel, error) {
	method := methodModel{Name: name}

	if ftype.Params != nil {
		for _, field := range ftype.Params.List {
			typeExpr := field.Type

			if ellipsis, ok := typeExpr.(*dst.Ellipsis); ok {
				method.Variadic = true
				typeExpr = ellipsis.Elt
			}

			typeStr, err := typeString(typeExpr)
			if err != nil {
				return method, err
			}

			if len(field.Names) == 0 {
				method.Params = append(method.Params, param{
					Name: fmt.Sprintf("a%d", len(method.Params)),
					Type: typeStr,
				})

				continue
			}

			for _, fieldName := range field.Names {
				method.Params = append(method.Params, param{
					Name: sanitizeParamName(fieldName.Name, len(method.Params)),
					Type: typeStr,
				})
			}
		}
	}

	if ftype.Results != nil {
		for _, field := range ftype.Results.List {
			typeStr, err := typeString(field.Type)
			if err != nil {
				return method, err
			}

			count := max(len(field.Names), 1)
			for range count {
				method.Results = append(method.Results, typeStr)
			}
		}
	}

	return method, nil
}

// generateMockCode renders the model as gofmt-formatted Go source.
func generateMockCode(model *mockModel) ([]byte, error) {
	w := &codeWriter{}

	w.pf("// Code generated by mockgen. DO NOT EDIT.\n\n")
	w.pf("package %s\n\n", model.Package)
	w.pf("import (\n\t\"github.com/toejough/unitest\"\n)\n\n")

	writeMockStruct(w, model)
	writeConstructor(w, model)
	writeInterfaceMethod(w, model)

	for _, method := range model.Methods {
		writeExpectMethod(w, model, method)
	}

	writeImpl(w, model)

	formatted, err := format.Source(w.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}

	return formatted, nil
}

func writeMockStruct(w *codeWriter, model *mockModel) {
	w.pf("// %s is a record/replay mock for the %s interface.\n", model.MockName, model.Interface)
	w.pf("// Queue expectations with the Expect* methods, pass Interface() to the\n")
	w.pf("// code under test, and unconsumed expectations fail the test at cleanup.\n")
	w.pf("type %s struct {\n", model.MockName)
	w.pf("\tctrl *unitest.MockController\n\n")

	for _, method := range model.Methods {
		w.pf("\t%s *unitest.MockedMethod\n", method.Name)
	}

	w.pf("}\n\n")
}

func writeConstructor(w *codeWriter, model *mockModel) {
	w.pf("// New%s creates a new mock for the %s interface, sharing the\n", model.MockName, model.Interface)
	w.pf("// expectation scope registered for r.\n")
	w.pf("func New%s(r unitest.Reporter) *%s {\n", model.MockName, model.MockName)
	w.pf("\tctrl := unitest.ControllerFor(r)\n\n")
	w.pf("\treturn &%s{\n", model.MockName)
	w.pf("\t\tctrl: ctrl,\n")

	for _, method := range model.Methods {
		w.pf("\t\t%s: ctrl.Method(%q),\n", method.Name, method.Name)
	}

	w.pf("\t}\n}\n\n")
}

func writeInterfaceMethod(w *codeWriter, model *mockModel) {
	w.pf("// Interface returns the mock as a %s implementation.\n", model.Interface)
	w.pf("func (m *%s) Interface() %s {\n", model.MockName, model.Interface)
	w.pf("\treturn &%s{mock: m}\n}\n\n", model.ImplName)
}

func writeExpectMethod(w *codeWriter, model *mockModel, method methodModel) {
	w.pf("// Expect%s queues an expectation that %s will be called with the given\n", method.Name, method.Name)
	w.pf("// arguments. Each argument may be a plain value or a matcher.\n")

	sig := make([]string, 0, len(method.Params))
	for i, p := range method.Params {
		if method.Variadic && i == len(method.Params)-1 {
			sig = append(sig, p.Name+" ...any")
		} else {
			sig = append(sig, p.Name+" any")
		}
	}

	w.pf("func (m *%s) Expect%s(%s) *unitest.Expectation {\n",
		model.MockName, method.Name, strings.Join(sig, ", "))

	names := paramNames(method)

	switch {
	case method.Variadic && len(method.Params) == 1:
		w.pf("\treturn m.%s.Expect(%s...)\n", method.Name, names[0])
	case method.Variadic:
		fixed := strings.Join(names[:len(names)-1], ", ")
		w.pf("\treturn m.%s.Expect(append([]any{%s}, %s...)...)\n",
			method.Name, fixed, names[len(names)-1])
	default:
		w.pf("\treturn m.%s.Expect(%s)\n", method.Name, strings.Join(names, ", "))
	}

	w.pf("}\n\n")
}

func writeImpl(w *codeWriter, model *mockModel) {
	w.pf("// %s implements %s by forwarding calls to the mock's\n", model.ImplName, model.Interface)
	w.pf("// expectation queues.\n")
	w.pf("type %s struct {\n\tmock *%s\n}\n\n", model.ImplName, model.MockName)

	for _, method := range model.Methods {
		writeImplMethod(w, model, method)
	}
}

func writeImplMethod(w *codeWriter, model *mockModel, method methodModel) {
	sig := make([]string, 0, len(method.Params))
	for i, p := range method.Params {
		if method.Variadic && i == len(method.Params)-1 {
			sig = append(sig, p.Name+" ..."+p.Type)
		} else {
			sig = append(sig, p.Name+" "+p.Type)
		}
	}

	w.pf("func (impl *%s) %s(%s)%s {\n",
		model.ImplName, method.Name, strings.Join(sig, ", "), resultsSignature(method))

	names := paramNames(method)

	callExpr := fmt.Sprintf("impl.mock.%s.Call(%s)", method.Name, strings.Join(names, ", "))

	if method.Variadic {
		fixed := names[:len(names)-1]
		variadicName := names[len(names)-1]

		w.pf("\tcallArgs := make([]any, 0, len(%s)+%d)\n", variadicName, len(fixed))

		if len(fixed) > 0 {
			w.pf("\tcallArgs = append(callArgs, %s)\n", strings.Join(fixed, ", "))
		}

		w.pf("\tfor _, v := range %s {\n\t\tcallArgs = append(callArgs, v)\n\t}\n\n", variadicName)

		callExpr = fmt.Sprintf("impl.mock.%s.Call(callArgs...)", method.Name)
	}

	if len(method.Results) == 0 {
		w.pf("\t%s\n}\n\n", callExpr)

		return
	}

	w.pf("\tresults := %s\n\n", callExpr)

	returnNames := make([]string, len(method.Results))

	for i, resultType := range method.Results {
		returnNames[i] = fmt.Sprintf("r%d", i)
		w.pf("\tvar r%d %s\n", i, resultType)
		w.pf("\tif len(results) > %d && results[%d] != nil {\n", i, i)
		w.pf("\t\tr%d = results[%d].(%s)\n\t}\n\n", i, i, resultType)
	}

	w.pf("\treturn %s\n}\n\n", strings.Join(returnNames, ", "))
}

func resultsSignature(method methodModel) string {
	switch len(method.Results) {
	case 0:
		return ""
	case 1:
		return " " + method.Results[0]
	default:
		return " (" + strings.Join(method.Results, ", ") + ")"
	}
}

func paramNames(method methodModel) []string {
	names := make([]string, len(method.Params))
	for i, p := range method.Params {
		names[i] = p.Name
	}

	return names
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}

// sanitizeParamName avoids collisions with identifiers the generated method
// bodies use themselves.
func sanitizeParamName(name string, index int) string {
	switch name {
	case "", "_":
		return fmt.Sprintf("a%d", index)
	case "impl", "results", "callArgs", "m", "r":
		return name + "Arg"
	default:
		return name
	}
}

// typeString renders a type expression as Go source. Only types that can
// appear unqualified in the generated package are supported.
func typeString(expr dst.Expr) (string, error) {
	switch t := expr.(type) {
	case *dst.Ident:
		if t.Path != "" {
			//nolint:err113 // validation error with dynamic context
			return "", fmt.Errorf("type %s.%s from another package is not supported", t.Path, t.Name)
		}

		return t.Name, nil
	case *dst.SelectorExpr:
		pkg, err := typeString(t.X)
		if err != nil {
			return "", err
		}

		return pkg + "." + t.Sel.Name, nil
	case *dst.StarExpr:
		inner, err := typeString(t.X)
		if err != nil {
			return "", err
		}

		return "*" + inner, nil
	case *dst.ArrayType:
		elem, err := typeString(t.Elt)
		if err != nil {
			return "", err
		}

		if t.Len != nil {
			length, err := typeString(t.Len)
			if err != nil {
				return "", err
			}

			return "[" + length + "]" + elem, nil
		}

		return "[]" + elem, nil
	case *dst.MapType:
		key, err := typeString(t.Key)
		if err != nil {
			return "", err
		}

		value, err := typeString(t.Value)
		if err != nil {
			return "", err
		}

		return "map[" + key + "]" + value, nil
	case *dst.ChanType:
		elem, err := typeString(t.Value)
		if err != nil {
			return "", err
		}

		switch t.Dir {
		case dst.RECV:
			return "<-chan " + elem, nil
		case dst.SEND:
			return "chan<- " + elem, nil
		default:
			return "chan " + elem, nil
		}
	case *dst.InterfaceType:
		if t.Methods == nil || len(t.Methods.List) == 0 {
			return "any", nil
		}

		//nolint:err113 // validation error with dynamic context
		return "", fmt.Errorf("inline non-empty interface types are not supported")
	case *dst.BasicLit:
		return t.Value, nil
	default:
		//nolint:err113 // validation error with dynamic context
		return "", fmt.Errorf("unsupported type expression %T", expr)
	}
}
