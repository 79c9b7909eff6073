package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Directive comments read from doc comments:
//
//	//mapping:options wildcard=false,date-format=2006-01-02   (on a type)
//	//mapping:pair Code,optional                              (on a getter)
const (
	directivePrefix  = "//mapping:"
	directiveOptions = "options"
	directivePair    = "pair"
)

// directiveIndex remembers directive comments by declaration, since
// go/types carries no comments.
type directiveIndex struct {
	types   map[TypeID]string
	methods map[string]string // pkgPath.Recv.Method
}

func newDirectiveIndex() *directiveIndex {
	return &directiveIndex{
		types:   make(map[TypeID]string),
		methods: make(map[string]string),
	}
}

func (d *directiveIndex) collect(pkg *packages.Package) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch dd := decl.(type) {
			case *ast.GenDecl:
				if dd.Tok != token.TYPE {
					continue
				}

				for _, spec := range dd.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}

					doc := ts.Doc
					if doc == nil && len(dd.Specs) == 1 {
						doc = dd.Doc
					}

					if text, ok := findDirective(doc, directiveOptions); ok {
						d.types[TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}] = text
					}
				}

			case *ast.FuncDecl:
				if dd.Recv == nil || len(dd.Recv.List) == 0 {
					continue
				}

				recv := receiverName(dd.Recv.List[0].Type)
				if recv == "" {
					continue
				}

				if text, ok := findDirective(dd.Doc, directivePair); ok {
					d.methods[pkg.PkgPath+"."+recv+"."+dd.Name.Name] = text
				}
			}
		}
	}
}

func (d *directiveIndex) typeOptions(id TypeID) string {
	return d.types[id]
}

// method looks the directive up on the declaring receiver, so promoted
// methods keep the directive of the embedded type.
func (d *directiveIndex) method(fn *types.Func) (string, bool) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return "", false
	}

	recv := sig.Recv().Type()
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = ptr.Elem()
	}

	named, ok := recv.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return "", false
	}

	text, ok := d.methods[named.Obj().Pkg().Path()+"."+named.Obj().Name()+"."+fn.Name()]

	return text, ok
}

// findDirective returns the argument text of //mapping:<verb> in doc.
func findDirective(doc *ast.CommentGroup, verb string) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}

		name, args, _ := strings.Cut(rest, " ")
		if name == verb {
			return strings.TrimSpace(args), true
		}
	}

	return "", false
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	default:
		return ""
	}
}
