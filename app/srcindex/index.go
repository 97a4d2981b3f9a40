// Package srcindex maps the bot's own commands and cogs to the file and
// line range that define them, so they can be linked on the hosted
// repository. The index is built once at startup by parsing the Go files
// under the bot's working root; there is no live reflection involved.
package srcindex

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"
)

// Location is a region of one source file, relative to the index root.
// File always uses forward slashes. A zero FirstLine means no line range
// is known.
type Location struct {
	File      string
	FirstLine int
	LastLine  int
}

// UnresolvableSourceError is returned when a command or cog has no
// discoverable source, e.g. a type declared in a dependency or
// constructed in a test binary.
type UnresolvableSourceError struct {
	Name string
}

func (e *UnresolvableSourceError) Error() string {
	return fmt.Sprintf("no source file or line information for %s", e.Name)
}

type typeEntry struct {
	decl    Location
	methods map[string]Location
}

// Index holds the declaration spans of every top-level type and method
// found under the scanned root, keyed by package and name.
type Index struct {
	root  string
	types map[string]*typeEntry
}

// Scan walks root for Go files and records every type and method
// declaration. Hidden and underscore-prefixed directories, vendor,
// testdata and _test.go files are skipped.
func Scan(root string) (*Index, error) {
	index := &Index{root: root, types: make(map[string]*typeEntry)}
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && skipDir(name) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			return nil
		}
		return index.scanFile(fset, path)
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") ||
		strings.HasPrefix(name, "_") ||
		name == "vendor" ||
		name == "testdata"
}

func (idx *Index) scanFile(fset *token.FileSet, path string) error {
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(idx.root, path)
	if err != nil {
		return err
	}
	relFile := filepath.ToSlash(rel)
	pkg := file.Name.Name

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				entry := idx.entry(pkg, typeSpec.Name.Name)
				entry.decl = span(fset, relFile, spec)
			}
		case *ast.FuncDecl:
			receiver := receiverName(d)
			if receiver == "" {
				continue
			}
			entry := idx.entry(pkg, receiver)
			entry.methods[d.Name.Name] = span(fset, relFile, d)
		}
	}
	return nil
}

func (idx *Index) entry(pkg, name string) *typeEntry {
	key := pkg + "." + name
	entry := idx.types[key]
	if entry == nil {
		entry = &typeEntry{methods: make(map[string]Location)}
		idx.types[key] = entry
	}
	return entry
}

func span(fset *token.FileSet, file string, node ast.Node) Location {
	return Location{
		File:      file,
		FirstLine: fset.Position(node.Pos()).Line,
		LastLine:  fset.Position(node.End()).Line,
	}
}

func receiverName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return ""
	}
	expr := decl.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// TypeSpan returns the region covering a type's declaration through its
// last method declared in the same file, the closest analog of a cog
// body.
func (idx *Index) TypeSpan(pkg, name string) (Location, error) {
	entry, ok := idx.types[pkg+"."+name]
	if !ok || entry.decl.File == "" {
		return Location{}, &UnresolvableSourceError{Name: pkg + "." + name}
	}
	location := entry.decl
	for _, method := range entry.methods {
		if method.File == location.File && method.LastLine > location.LastLine {
			location.LastLine = method.LastLine
		}
	}
	return location, nil
}

// MethodSpan returns the declaration region of one method of a type.
func (idx *Index) MethodSpan(pkg, name, method string) (Location, error) {
	entry, ok := idx.types[pkg+"."+name]
	if !ok {
		return Location{}, &UnresolvableSourceError{Name: pkg + "." + name}
	}
	location, ok := entry.methods[method]
	if !ok {
		return Location{}, &UnresolvableSourceError{Name: pkg + "." + name + "." + method}
	}
	return location, nil
}
