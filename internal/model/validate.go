package model

import (
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed tree")

// Validate checks the structural preconditions generation relies on. Problems
// are joined into a single error that wraps ErrMalformed.
func Validate(roots ...*Node) error {
	var (
		problems []error
		seen     = make(map[*Node]bool)
	)

	var visit func(n *Node)
	visit = func(n *Node) {
		if seen[n] {
			problems = append(problems, fmt.Errorf("%w: %s is reachable twice", ErrMalformed, n.Path()))
			return
		}
		seen[n] = true

		if !n.Kind.Valid() {
			problems = append(problems, fmt.Errorf("%w: %s has invalid kind", ErrMalformed, n.Path()))
		}
		switch n.Kind {
		case KindStructureElement:
			if !n.ParentIs(KindStructure) {
				problems = append(problems, fmt.Errorf("%w: %s must be inside a structure", ErrMalformed, n.Path()))
			}
		case KindEnumerationValue:
			if !n.ParentIs(KindEnumeration) {
				problems = append(problems, fmt.Errorf("%w: %s must be inside an enumeration", ErrMalformed, n.Path()))
			}
		}

		for _, c := range n.children {
			if c == nil {
				problems = append(problems, fmt.Errorf("%w: %s has a nil child", ErrMalformed, n.Path()))
				continue
			}
			if c.parent != n {
				problems = append(problems, fmt.Errorf("%w: %s does not point back at its owner %s", ErrMalformed, c.Path(), n.Path()))
			}
			visit(c)
		}
	}

	for _, r := range roots {
		if r == nil {
			continue
		}
		visit(r)
	}
	return errors.Join(problems...)
}
