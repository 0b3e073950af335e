// Package walker drives a hierarchical depth-first visit over a model tree.
//
// Each node gets Enter before its children and Leave after them. Enter
// returning false skips the node's subtree, including its Leave. Leave
// returning false ends the visit of the node's remaining siblings.
package walker

import "github.com/cmmoran/pibxgen/internal/model"

// Handler is the pair of callbacks registered for one node kind. A nil
// callback behaves as if it returned true.
type Handler struct {
	Enter func(n *model.Node) bool
	Leave func(n *model.Node) bool
}

// Table maps node kinds to their handlers. Kinds without an entry are
// traversed without callbacks.
type Table map[model.Kind]Handler

// Walk visits each root in order.
func Walk(table Table, roots ...*model.Node) {
	for _, r := range roots {
		if r == nil {
			continue
		}
		if !walk(table, r) {
			break
		}
	}
}

// walk returns false when the caller should stop visiting n's siblings.
func walk(table Table, n *model.Node) bool {
	h := table[n.Kind]
	if h.Enter != nil && !h.Enter(n) {
		return true
	}
	for _, c := range n.Children() {
		if !walk(table, c) {
			break
		}
	}
	if h.Leave != nil {
		return h.Leave(n)
	}
	return true
}
