// Package names derives class, member and accessor identifiers from schema
// node names. Every function is pure.
package names

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"

	"github.com/cmmoran/pibxgen/internal/model"
	"github.com/cmmoran/pibxgen/internal/xsd"
)

const listSuffix = "List"

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// CamelCasedNameFor converts "first-name" or "first_name" to "FirstName".
// The remainder of each part keeps its case.
func CamelCasedNameFor(raw string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(raw, isSeparator) {
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

// AttributeNameFor is CamelCasedNameFor with a lower-case first rune.
func AttributeNameFor(raw string) string {
	return lowerFirst(CamelCasedNameFor(raw))
}

// ClassNameFor returns the class identifier for a schema type name.
func ClassNameFor(name string) string {
	return CamelCasedNameFor(xsd.Local(name))
}

// MethodNameFor is the accessor stem for n. Structure elements are prefixed
// with their structure's name so members of different groups cannot collide;
// a collection item standing on its own is marked as a list.
func MethodNameFor(n *model.Node) string {
	switch {
	case n.Kind == model.KindStructureElement && n.Parent() != nil:
		return CamelCasedNameFor(n.Parent().Name) + CamelCasedNameFor(n.Name)
	case n.Kind == model.KindCollectionItem && !n.ParentIs(model.KindCollection):
		return CamelCasedNameFor(n.Name) + listSuffix
	default:
		return CamelCasedNameFor(n.Name)
	}
}

// MemberNameFor is the field and parameter name generated for n.
func MemberNameFor(n *model.Node) string {
	return lowerFirst(MethodNameFor(n))
}

func SetterNameFor(n *model.Node) string { return "set" + MethodNameFor(n) }

func GetterNameFor(n *model.Node) string { return "get" + MethodNameFor(n) }

// PredicateNameFor names the "is this choice member active" method.
func PredicateNameFor(n *model.Node) string { return "is" + MethodNameFor(n) }

// SelectorNameFor is the field that records the active member of a choice
// structure.
func SelectorNameFor(structure *model.Node) string {
	return AttributeNameFor(structure.Name) + "Select"
}

// ChoiceConstantFor returns STRUCTURE_ELEMENT_CHOICE for a structure element.
func ChoiceConstantFor(element *model.Node) string {
	parent := ""
	if element.Parent() != nil {
		parent = element.Parent().Name
	}
	return constantName(parent + "_" + element.Name + "_CHOICE")
}

// ChoiceConstantsFor returns one discriminant constant per structure element
// of structure, in child order.
func ChoiceConstantsFor(structure *model.Node) []string {
	elements := structure.ChildrenOf(model.KindStructureElement)
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		out = append(out, ChoiceConstantFor(e))
	}
	return out
}

// SingularFor names one element of a list called raw. When raw has no
// distinct singular form the result is raw + "Item".
func SingularFor(raw string) string {
	s := inflection.Singular(raw)
	if s == "" || s == raw {
		return raw + "Item"
	}
	return s
}

func constantName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToUpper(r)
		}
		return '_'
	}, s)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// Service exposes the package functions as a value for the generator.
type Service struct{}

func (Service) ClassNameFor(name string) string { return ClassNameFor(name) }
func (Service) SetterNameFor(n *model.Node) string { return SetterNameFor(n) }
func (Service) GetterNameFor(n *model.Node) string { return GetterNameFor(n) }
func (Service) PredicateNameFor(n *model.Node) string { return PredicateNameFor(n) }
func (Service) MemberNameFor(n *model.Node) string { return MemberNameFor(n) }
func (Service) AttributeNameFor(raw string) string { return AttributeNameFor(raw) }
func (Service) CamelCasedNameFor(raw string) string { return CamelCasedNameFor(raw) }
func (Service) SelectorNameFor(structure *model.Node) string { return SelectorNameFor(structure) }
func (Service) ChoiceConstantFor(element *model.Node) string { return ChoiceConstantFor(element) }
func (Service) ChoiceConstantsFor(structure *model.Node) []string { return ChoiceConstantsFor(structure) }
