// Package typecheck renders the validation guards injected at the top of
// generated setters.
package typecheck

import (
	"fmt"
	"strings"

	"github.com/cmmoran/pibxgen/internal/model"
	"github.com/cmmoran/pibxgen/internal/names"
	"github.com/cmmoran/pibxgen/internal/xsd"
)

// setter bodies start two tabs in
const bodyDepth = 2

const (
	datePattern     = `/^-?\d{4}-\d{2}-\d{2}(Z|[+-]\d{2}:\d{2})?$/`
	dateTimePattern = `/^-?\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$/`
	timePattern     = `/^\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$/`
)

// ClassNamer resolves a complex schema type to the class it generates.
type ClassNamer interface {
	ClassNameFor(name string) string
}

type Renderer struct {
	classes ClassNamer
}

// New returns a Renderer. A nil namer falls back to names.Service.
func New(classes ClassNamer) *Renderer {
	if classes == nil {
		classes = names.Service{}
	}
	return &Renderer{classes: classes}
}

// ScalarCheckFor returns the guard for one value of schemaType held in the
// PHP variable $variable. The empty type yields no guard.
func (r *Renderer) ScalarCheckFor(schemaType, variable string) string {
	return r.check(schemaType, variable, bodyDepth)
}

// ListCheckFor returns a loop applying the element guard to every entry of
// the array held in $variable. For a collection the element type comes from
// its first item; any other node supplies its own type.
func (r *Renderer) ListCheckFor(n *model.Node, variable string) string {
	elemType := n.Type
	if n.Kind == model.KindCollection {
		if items := n.ChildrenOf(model.KindCollectionItem); len(items) > 0 {
			elemType = items[0].Type
		}
	}

	item := names.SingularFor(variable)
	inner := r.check(elemType, item, bodyDepth+1)
	if inner == "" {
		return ""
	}

	indent := strings.Repeat("\t", bodyDepth)
	return indent + "foreach ($" + variable + " as $" + item + ") {\n" +
		inner +
		indent + "}\n"
}

func (r *Renderer) check(schemaType, variable string, depth int) string {
	if strings.TrimSpace(schemaType) == "" {
		return ""
	}

	v := "$" + variable
	label := xsd.Local(schemaType)
	message := fmt.Sprintf(`'"' . %s . '" is not a valid %s.'`, v, label)

	var cond string
	switch xsd.CategoryOf(schemaType) {
	case xsd.String:
		cond = "!is_string(" + v + ")"
	case xsd.Integer:
		cond = "!is_int(" + v + ")"
	case xsd.Decimal:
		cond = "!is_numeric(" + v + ")"
	case xsd.Float:
		cond = "!is_float(" + v + ") && !is_int(" + v + ")"
	case xsd.Boolean:
		cond = "!is_bool(" + v + ")"
		message = fmt.Sprintf(`'"' . var_export(%s, true) . '" is not a valid %s.'`, v, label)
	case xsd.Date:
		cond = patternCond(v, datePattern)
	case xsd.DateTime:
		cond = patternCond(v, dateTimePattern)
	case xsd.Time:
		cond = patternCond(v, timePattern)
	default:
		class := r.classes.ClassNameFor(schemaType)
		cond = "!(" + v + " instanceof " + class + ")"
		message = "'Expected an instance of " + class + ".'"
	}

	indent := strings.Repeat("\t", depth)
	return indent + "if (" + cond + ") {\n" +
		indent + "\tthrow new InvalidArgumentException(" + message + ");\n" +
		indent + "}\n"
}

func patternCond(v, pattern string) string {
	return "!is_string(" + v + ") || !preg_match('" + pattern + "', " + v + ")"
}
