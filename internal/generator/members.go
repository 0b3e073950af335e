package generator

import (
	"strconv"
	"strings"

	"github.com/cmmoran/pibxgen/internal/model"
	"github.com/cmmoran/pibxgen/internal/xsd"
)

// enterTypeAttribute generates a plain member for a leaf attribute. An
// attribute with children is generated by its substructure instead.
func (g *Generator) enterTypeAttribute(n *model.Node) bool {
	if !n.IsLeaf() {
		return true
	}

	member := g.names.MemberNameFor(n)
	param := "$" + member
	if !xsd.IsBaseType(n.Type) {
		// complex types are hinted in the signature
		param = g.names.ClassNameFor(n.Type) + " " + param
	}

	g.attribute(field(member))
	g.method(function("public", g.names.SetterNameFor(n), param,
		g.scalarCheck(n.Type, member),
		assign(member),
	))
	g.method(getter(g.names.GetterNameFor(n), member))
	return false
}

func (g *Generator) enterCollection(n *model.Node) bool {
	g.arrayMember(n)
	return true
}

// visitCollectionItem is inert under a collection, which already generated
// the member. A free-standing item generates its own list member.
func (g *Generator) visitCollectionItem(n *model.Node) bool {
	if n.ParentIs(model.KindCollection) {
		return false
	}
	g.arrayMember(n)
	return true
}

func (g *Generator) arrayMember(n *model.Node) {
	member := g.names.MemberNameFor(n)

	g.attribute(field(member))
	g.method(function("public", g.names.SetterNameFor(n), "array $"+member,
		g.listCheck(n, member),
		assign(member),
	))
	g.method(getter(g.names.GetterNameFor(n), member))
}

// enterEnumeration generates a member restricted to the enumeration's values.
// Standalone enumerations are not supported and produce nothing.
func (g *Generator) enterEnumeration(n *model.Node) bool {
	if n.IsRoot() {
		return false
	}

	member := g.names.MemberNameFor(n)
	var check string
	if g.cfg.TypeChecks {
		values := make([]string, 0, n.CountChildren())
		for _, v := range n.ChildrenOf(model.KindEnumerationValue) {
			values = append(values, v.Name)
		}
		check = enumerationCheck(member, values)
	}

	g.attribute(field(member))
	g.method(function("public", g.names.SetterNameFor(n), "$"+member,
		check,
		assign(member),
	))
	g.method(getter(g.names.GetterNameFor(n), member))
	return true
}

// enterStructure generates the selector, discriminants and the select/clear
// pair of a choice structure. Other structures only group their elements.
func (g *Generator) enterStructure(n *model.Node) bool {
	if n.StructureType != model.StructureChoice {
		return true
	}

	selector := g.names.SelectorNameFor(n)
	g.attribute("\tprivate $" + selector + " = -1;\n")
	for i, constant := range g.names.ChoiceConstantsFor(n) {
		g.attribute("\tprivate $" + constant + " = " + strconv.Itoa(i) + ";\n")
	}

	method := g.names.CamelCasedNameFor(selector)
	this := "$this->" + selector
	g.method(function("private", "set"+method, "$choice",
		"\t\tif ("+this+" == -1) {\n",
		"\t\t\t"+this+" = $choice;\n",
		"\t\t} elseif ("+this+" != $choice) {\n",
		"\t\t\tthrow new RuntimeException('Need to call clear"+method+"() before changing existing choice');\n",
		"\t\t}\n",
	))
	g.method(function("public", "clear"+method, "",
		"\t\t"+this+" = -1;\n",
	))
	return true
}

// enterStructureElement generates a member of a structure. Members of a
// choice activate their branch before storing the value.
func (g *Generator) enterStructureElement(n *model.Node) bool {
	member := g.names.MemberNameFor(n)
	g.attribute(field(member))

	parent := n.Parent()
	if parent == nil || parent.StructureType != model.StructureChoice {
		g.method(function("public", g.names.SetterNameFor(n), "$"+member,
			g.scalarCheck(n.Type, member),
			assign(member),
		))
		g.method(getter(g.names.GetterNameFor(n), member))
		return true
	}

	selector := "$this->" + g.names.SelectorNameFor(parent)
	constant := "$this->" + g.names.ChoiceConstantFor(n)

	g.method(function("public", g.names.PredicateNameFor(n), "",
		"\t\treturn "+selector+" == "+constant+";\n",
	))
	g.method(function("public", g.names.SetterNameFor(n), "$"+member,
		"\t\t$this->set"+g.names.CamelCasedNameFor(g.names.SelectorNameFor(parent))+"("+constant+");\n",
		g.scalarCheck(n.Type, member),
		assign(member),
	))
	g.method(getter(g.names.GetterNameFor(n), member))
	return true
}

func (g *Generator) scalarCheck(schemaType, member string) string {
	if !g.cfg.TypeChecks {
		return ""
	}
	return g.checks.ScalarCheckFor(schemaType, member)
}

func (g *Generator) listCheck(n *model.Node, member string) string {
	if !g.cfg.TypeChecks {
		return ""
	}
	return g.checks.ListCheckFor(n, member)
}

func field(member string) string {
	return "\tprivate $" + member + ";\n"
}

// function renders a method; body lines carry their own indentation.
func function(visibility, name, params string, body ...string) string {
	return "\t" + visibility + " function " + name + "(" + params + ") {\n" +
		strings.Join(body, "") +
		"\t}\n"
}

func assign(member string) string {
	return "\t\t$this->" + member + " = $" + member + ";\n"
}

func getter(name, member string) string {
	return function("public", name, "", "\t\treturn $this->"+member+";\n")
}

func enumerationCheck(member string, values []string) string {
	quoted := make([]string, len(values))
	listed := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + escapeSingleQuoted(v) + "'"
		listed[i] = `"` + escapeSingleQuoted(v) + `"`
	}
	v := "$" + member
	return "\t\tif (!in_array(" + v + ", array(" + strings.Join(quoted, ", ") + "), true)) {\n" +
		"\t\t\tthrow new InvalidArgumentException('Unexpected value \"' . " + v + " . '\". Expected is one of the following: " + strings.Join(listed, ", ") + ".');\n" +
		"\t\t}\n"
}

var singleQuoted = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func escapeSingleQuoted(s string) string {
	return singleQuoted.Replace(s)
}
