package check

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"sync"

	"github.com/philipp01105/toolbox/core"
)

// sourceCache maps a file name to its parsed *sourceFile. Files are parsed
// on the first failed check and kept for the life of the process.
var sourceCache sync.Map

type sourceFile struct {
	fset *token.FileSet
	file *ast.File
}

func loadSource(filename string) *sourceFile {
	if v, ok := sourceCache.Load(filename); ok {
		return v.(*sourceFile)
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, nil, parser.SkipObjectResolution)
	sf := &sourceFile{fset: fset}
	if err == nil {
		sf.file = f
	}
	v, _ := sourceCache.LoadOrStore(filename, sf)
	return v.(*sourceFile)
}

// exprs returns the source text of the arguments passed to the call of
// the check named name at the caller's position, without the leading
// *Checker argument. When the source cannot be found or does not match,
// fallback is returned.
func exprs(caller core.CallerInfo, name string, fallback ...string) []string {
	if !caller.Defined {
		return fallback
	}
	sf := loadSource(caller.File)
	if sf.file == nil {
		return fallback
	}

	// Every call named name spanning the caller's line with the expected
	// arity is a candidate. runtime.Caller reports lines, not columns, so
	// two candidates on one line cannot be told apart.
	var found *ast.CallExpr
	matches := 0
	ast.Inspect(sf.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || calleeName(call.Fun) != name || len(call.Args) != len(fallback)+1 {
			return true
		}
		start := sf.fset.Position(call.Pos()).Line
		end := sf.fset.Position(call.End()).Line
		if caller.Line < start || caller.Line > end {
			return true
		}
		found = call
		matches++
		return true
	})
	if matches != 1 {
		return fallback
	}

	out := make([]string, 0, len(fallback))
	var buf bytes.Buffer
	for _, arg := range found.Args[1:] {
		buf.Reset()
		if err := printer.Fprint(&buf, sf.fset, arg); err != nil {
			return fallback
		}
		out = append(out, buf.String())
	}
	return out
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	default:
		return ""
	}
}
