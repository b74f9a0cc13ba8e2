package introspect

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"runtime"

	"github.com/on-the-ground/closure_ive_go/memo"
)

var ErrSourceUnavailable = errors.New("function source unavailable")

type sourceFile struct {
	src  []byte
	fset *token.FileSet
	file *ast.File
}

// parseSource is tableized: a file is read and parsed once per path.
var parseSource = memo.TableizeI1O2(func(path string) (*sourceFile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	return &sourceFile{src: src, fset: fset, file: file}, nil
}, memo.NewTableConfig(64, 1))

// FunctionBody returns the source text of fn, from the func keyword to the closing brace.
// A nil fn yields an empty string and no error.
func FunctionBody(fn any) (string, error) {
	if fn == nil {
		return "", nil
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return "", fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}
	if v.IsNil() {
		return "", nil
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "", fmt.Errorf("%w: no symbol for %T", ErrSourceUnavailable, fn)
	}
	path, line := f.FileLine(f.Entry())

	sf, err := parseSource(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, f.Name(), err)
	}
	node := sf.funcAt(line)
	if node == nil {
		return "", fmt.Errorf("%w: %s: no function at %s:%d", ErrSourceUnavailable, f.Name(), path, line)
	}
	start := sf.fset.Position(node.Pos()).Offset
	end := sf.fset.Position(node.End()).Offset
	return string(sf.src[start:end]), nil
}

// funcAt finds the declaration or literal for the function whose entry is at line.
// A function starting on that line wins; otherwise the innermost one spanning it.
// Two functions starting on the same line resolve to the outermost.
func (sf *sourceFile) funcAt(line int) ast.Node {
	var starting, spanning ast.Node
	ast.Inspect(sf.file, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.FuncDecl, *ast.FuncLit:
		default:
			return true
		}
		first := sf.fset.Position(n.Pos()).Line
		last := sf.fset.Position(n.End()).Line
		if line < first || line > last {
			return false
		}
		if first == line && starting == nil {
			starting = n
		}
		spanning = n
		return true
	})
	if starting != nil {
		return starting
	}
	return spanning
}
