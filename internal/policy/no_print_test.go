package policy

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestLibraryDoesNotPrint(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...", backendPath)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}

				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}

				if isPrint(obj.Pkg().Path(), obj.Name()) {
					pos := fset.Position(call.Pos())
					findings = append(findings, fmt.Sprintf("%s: %s.%s in library code; use pkg/logging", pos, obj.Pkg().Path(), obj.Name()))
				}

				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("logging policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isPrint(pkgPath, name string) bool {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Print", "Printf", "Println":
			return true
		}
	case "log":
		switch name {
		case "Print", "Printf", "Println", "Fatal", "Fatalf", "Fatalln":
			return true
		}
	}
	return false
}
