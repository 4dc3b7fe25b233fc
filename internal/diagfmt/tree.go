package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"cesium/internal/ast"
)

// Tree writes an indented dump of the parse trees.
func Tree(w io.Writer, files []*ast.SourceFile) {
	for _, f := range files {
		fmt.Fprintf(w, "source-file %s\n", f.SourceName())
		writeNamespace(w, f.Root, 1)
	}
}

func indent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat("  ", depth))
}

func writeNamespace(w io.Writer, ns *ast.Namespace, depth int) {
	indent(w, depth)
	if ns.Name == nil {
		fmt.Fprintln(w, "namespace <root>")
	} else {
		fmt.Fprintf(w, "namespace %s\n", ns.Name)
	}
	for _, a := range ns.ExternAliases {
		indent(w, depth+1)
		fmt.Fprintf(w, "extern alias %s\n", a)
	}
	for _, u := range ns.Usings.Slice() {
		indent(w, depth+1)
		switch u := u.(type) {
		case *ast.UsingNamespace:
			fmt.Fprintf(w, "using %s\n", u.Name)
		case *ast.UsingAlias:
			fmt.Fprintf(w, "using %s = %s\n", u.Alias, u.Target)
		}
	}
	for _, a := range ns.GlobalAttributes.Slice() {
		indent(w, depth+1)
		fmt.Fprintf(w, "[assembly: %s]\n", a.Type)
	}
	for _, nested := range ns.Namespaces.Slice() {
		writeNamespace(w, nested, depth+1)
	}
	for _, t := range ns.Types.Slice() {
		writeType(w, t, depth+1)
	}
}

func writeType(w io.Writer, t *ast.TypeDeclaration, depth int) {
	indent(w, depth)
	if mods := t.Mods.String(); mods != "" {
		fmt.Fprintf(w, "%s %s %s\n", mods, t.Kind, t.Name)
	} else {
		fmt.Fprintf(w, "%s %s\n", t.Kind, t.Name)
	}

	switch t.Kind {
	case ast.KindEnum:
		for _, m := range t.EnumMembers.Slice() {
			indent(w, depth+1)
			fmt.Fprintf(w, "member %s\n", m.Name)
		}
	case ast.KindDelegate:
		indent(w, depth+1)
		fmt.Fprintf(w, "returns %s, %d parameter(s)\n", t.ReturnType, len(t.Params))
	default:
		for _, f := range t.Fields.Slice() {
			indent(w, depth+1)
			fmt.Fprintf(w, "field %s %s\n", f.Type, f.Name)
		}
		for _, e := range t.Events.Slice() {
			indent(w, depth+1)
			fmt.Fprintf(w, "event %s %s\n", e.Type, e.Name)
		}
		for _, pr := range t.Properties.Slice() {
			indent(w, depth+1)
			kind := "property"
			if pr.IsIndexer {
				kind = "indexer"
			}
			fmt.Fprintf(w, "%s %s %s\n", kind, pr.Type, pr.Name)
		}
		for _, m := range t.Methods.Slice() {
			indent(w, depth+1)
			switch m.Kind {
			case ast.MethodConstructor:
				fmt.Fprintf(w, "constructor %s(%d)\n", m.Name, len(m.Params))
			case ast.MethodDestructor:
				fmt.Fprintf(w, "destructor ~%s()\n", m.Name)
			default:
				fmt.Fprintf(w, "method %s %s(%d)\n", m.ReturnType, m.Name, len(m.Params))
			}
		}
		for _, nested := range t.Nested.Slice() {
			writeType(w, nested, depth+1)
		}
	}
}
