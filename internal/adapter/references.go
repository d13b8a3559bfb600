package adapter

import (
	"sort"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// JavaReferenceIndex finds references to class members by walking the syntax
// tree of the current buffer. Names are matched syntactically: a local
// variable that shadows a field is reported as a reference to the field.
type JavaReferenceIndex struct {
	buffer BufferMutator
	lang   *sitter.Language
}

var _ ReferenceIndex = (*JavaReferenceIndex)(nil)

// NewJavaReferenceIndex creates a reference index over buffer.
func NewJavaReferenceIndex(buffer BufferMutator) *JavaReferenceIndex {
	return &JavaReferenceIndex{
		buffer: buffer,
		lang:   sitter.NewLanguage(tree_sitter_java.Language()),
	}
}

// declarationNames are the node kinds whose "name" field declares a new
// symbol rather than referencing one.
var declarationNames = map[string]bool{
	"variable_declarator":         true,
	"formal_parameter":            true,
	"catch_formal_parameter":      true,
	"enum_constant":               true,
	"method_declaration":          true,
	"constructor_declaration":     true,
	"class_declaration":           true,
	"interface_declaration":       true,
	"enum_declaration":            true,
	"record_declaration":          true,
	"annotation_type_declaration": true,
}

// FindReferences returns every reference to member outside its own
// declaration name, in ascending order.
func (x *JavaReferenceIndex) FindReferences(member m.MemberDescriptor) ([]m.Range, error) {
	if member.Name == "" {
		return nil, jerrors.New(jerrors.CodeInvariantViolation, "member has no name")
	}

	src := []byte(x.buffer.FullText())

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(x.lang); err != nil {
		return nil, jerrors.Wrap(err, jerrors.CodeInternal, "load java grammar")
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, jerrors.New(jerrors.CodeInternal, "parse failed")
	}
	defer tree.Close()

	root := tree.RootNode()

	className := ""
	if class := firstTypeDeclaration(root); class != nil {
		className = fieldText(class, "name", src)
	}

	w := refWalker{
		src:       src,
		member:    member,
		className: className,
	}
	w.walk(root, nil)

	sort.Slice(w.found, func(i, j int) bool {
		return w.found[i].Start < w.found[j].Start
	})

	return w.found, nil
}

type refWalker struct {
	src       []byte
	member    m.MemberDescriptor
	className string
	found     []m.Range
}

func (w *refWalker) walk(node, parent *sitter.Node) {
	if w.matches(node, parent) {
		r := m.Range{Start: int(node.StartByte()), End: int(node.EndByte())}
		if r.Start != w.member.NameStart || r.End != w.member.NameEnd {
			w.found = append(w.found, r)
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		w.walk(node.Child(i), node)
	}
}

func (w *refWalker) matches(node, parent *sitter.Node) bool {
	kind := node.Kind()
	if kind != "identifier" && kind != "type_identifier" {
		return false
	}

	if text(node, w.src) != w.member.Name {
		return false
	}

	switch w.member.Kind {
	case m.KindVariable:
		return kind == "identifier" && w.isVariableUse(node, parent)
	case m.KindMethod:
		return kind == "identifier" && w.isMethodUse(node, parent)
	case m.KindEnum, m.KindInnerClass:
		if kind == "type_identifier" {
			return true
		}

		if parent != nil && parent.Kind() == "constructor_declaration" && isField(parent, "name", node) {
			return true
		}

		return parent != nil && isField(parent, "object", node) &&
			(parent.Kind() == "field_access" || parent.Kind() == "method_invocation")
	}

	return false
}

func (w *refWalker) isVariableUse(node, parent *sitter.Node) bool {
	if parent == nil {
		return true
	}

	switch parent.Kind() {
	case "method_invocation":
		return !isField(parent, "name", node)
	case "field_access":
		if isField(parent, "field", node) {
			return w.isOwnObject(parent.ChildByFieldName("object"))
		}
	case "method_reference":
		return !sameNode(parent.Child(parent.ChildCount()-1), node)
	case "labeled_statement", "break_statement", "continue_statement",
		"inferred_parameters", "scoped_identifier", "package_declaration", "import_declaration":
		return false
	case "lambda_expression":
		return !isField(parent, "parameters", node)
	}

	if declarationNames[parent.Kind()] && isField(parent, "name", node) {
		return false
	}

	return true
}

func (w *refWalker) isMethodUse(node, parent *sitter.Node) bool {
	if parent == nil {
		return false
	}

	switch parent.Kind() {
	case "method_invocation":
		if !isField(parent, "name", node) {
			return false
		}

		object := parent.ChildByFieldName("object")

		return object == nil || w.isOwnObject(object)
	case "method_reference":
		last := parent.Child(parent.ChildCount() - 1)
		return sameNode(last, node)
	}

	return false
}

// isOwnObject reports whether object denotes the enclosing class: this or the
// class name.
func (w *refWalker) isOwnObject(object *sitter.Node) bool {
	if object == nil {
		return false
	}

	switch object.Kind() {
	case "this":
		return true
	case "identifier":
		return w.className != "" && text(object, w.src) == w.className
	}

	return false
}

func isField(parent *sitter.Node, field string, node *sitter.Node) bool {
	return sameNode(parent.ChildByFieldName(field), node)
}

func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}

	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Kind() == b.Kind()
}
