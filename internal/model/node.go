package model

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindInvalid          Kind = iota
	KindType                  // complex type, one generated class
	KindTypeAttribute         // named member of a type
	KindStructure             // sequence / choice / all group
	KindStructureElement      // member of a structure
	KindCollection            // repeated member
	KindCollectionItem        // element type of a collection
	KindEnumeration           // closed set of string values
	KindEnumerationValue      // one permitted value
)

var kindNames = map[Kind]string{
	KindType:             "type",
	KindTypeAttribute:    "attribute",
	KindStructure:        "structure",
	KindStructureElement: "element",
	KindCollection:       "collection",
	KindCollectionItem:   "item",
	KindEnumeration:      "enumeration",
	KindEnumerationValue: "value",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("invalid(%d)", int(k))
}

// Valid reports whether k is one of the known node kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a document kind name ("type", "attribute", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown node kind %q", s)
}

type StructureType int

const (
	StructureSequence StructureType = iota
	StructureChoice
	StructureAll
)

var structureNames = map[StructureType]string{
	StructureSequence: "sequence",
	StructureChoice:   "choice",
	StructureAll:      "all",
}

func (s StructureType) String() string {
	if n, ok := structureNames[s]; ok {
		return n
	}
	return fmt.Sprintf("invalid(%d)", int(s))
}

// ParseStructureType maps "sequence", "choice" or "all" to a StructureType.
// The empty string is a sequence.
func ParseStructureType(s string) (StructureType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StructureSequence, nil
	}
	for st, name := range structureNames {
		if name == s {
			return st, nil
		}
	}
	return StructureSequence, fmt.Errorf("unknown structure type %q", s)
}

// Node is one element of the schema-derived tree. The parent pointer is a
// back reference only; a node owns its children and nothing else.
type Node struct {
	Kind          Kind
	Name          string
	Type          string // schema type reference, "" when not applicable
	StructureType StructureType

	parent   *Node
	children []*Node
}

func NewNode(kind Kind, name string) *Node {
	return &Node{Kind: kind, Name: name}
}

func NewType(name string) *Node { return NewNode(KindType, name) }

func NewTypeAttribute(name, typ string) *Node {
	n := NewNode(KindTypeAttribute, name)
	n.Type = typ
	return n
}

func NewStructure(name string, st StructureType) *Node {
	n := NewNode(KindStructure, name)
	n.StructureType = st
	return n
}

func NewStructureElement(name, typ string) *Node {
	n := NewNode(KindStructureElement, name)
	n.Type = typ
	return n
}

func NewCollection(name string) *Node { return NewNode(KindCollection, name) }

func NewCollectionItem(name, typ string) *Node {
	n := NewNode(KindCollectionItem, name)
	n.Type = typ
	return n
}

// NewEnumeration returns an enumeration with one value child per value.
func NewEnumeration(name string, values ...string) *Node {
	n := NewNode(KindEnumeration, name)
	for _, v := range values {
		n.Add(NewEnumerationValue(v))
	}
	return n
}

func NewEnumerationValue(name string) *Node { return NewNode(KindEnumerationValue, name) }

// Add appends children in order and points their parent at n. It returns n so
// trees can be written as nested expressions.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Children() []*Node { return n.children }

func (n *Node) CountChildren() int { return len(n.children) }

// Child returns the i-th child or nil when i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

func (n *Node) IsRoot() bool { return n.parent == nil }

// ParentIs reports whether n has a parent of the given kind.
func (n *Node) ParentIs(kind Kind) bool {
	return n.parent != nil && n.parent.Kind == kind
}

// ChildrenOf returns the children of n with the given kind, in order.
func (n *Node) ChildrenOf(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Path is a slash separated list of names from the root to n, for messages.
func (n *Node) Path() string {
	var (
		parts   []string
		visited = make(map[*Node]bool)
	)
	for cur := n; cur != nil && !visited[cur]; cur = cur.parent {
		visited[cur] = true
		parts = append([]string{cur.Kind.String() + ":" + cur.Name}, parts...)
	}
	return strings.Join(parts, "/")
}
