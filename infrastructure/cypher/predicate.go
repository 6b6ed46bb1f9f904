// Package cypher builds parameterized Cypher query text from filter
// specifications. The package is pure: no I/O, no driver types. Filter
// dimensions become atomic predicates with named parameter slots; a
// predicate renders against a caller-chosen node variable, which lets the
// relation query reuse the entity predicates for its own endpoint
// variables instead of rewriting query text.
package cypher

import (
	"fmt"
	"strings"
)

// Params carries the named parameter bindings referenced by rendered
// predicates. Values are driver-ready (strings and string slices).
type Params map[string]any

// Merge copies all bindings from other into p.
func (p Params) Merge(other Params) {
	for k, v := range other {
		p[k] = v
	}
}

// Predicate is one atomic filter condition on a node.
type Predicate interface {
	// Render returns the Cypher text of the condition applied to the
	// given node variable.
	Render(nodeVar string) string
}

// membership tests a scalar property against a client-supplied set.
type membership struct {
	field string
	param string
}

func (m membership) Render(nodeVar string) string {
	return fmt.Sprintf("%s.%s IN $%s", nodeVar, m.field, m.param)
}

// listMembership is true when any element of a list property is in the
// client-supplied set.
type listMembership struct {
	field string
	param string
}

func (m listMembership) Render(nodeVar string) string {
	return fmt.Sprintf("ANY(x IN %s.%s WHERE x IN $%s)", nodeVar, m.field, m.param)
}

// comparison bounds a property against a single parameter.
type comparison struct {
	field string
	op    string
	param string
}

func (c comparison) Render(nodeVar string) string {
	return fmt.Sprintf("%s.%s %s $%s", nodeVar, c.field, c.op, c.param)
}

// PredicateSet is an AND-combined group of predicates plus the parameter
// bindings they reference.
type PredicateSet struct {
	preds  []Predicate
	params Params
}

// Empty reports whether the set contains no predicates.
func (s PredicateSet) Empty() bool {
	return len(s.preds) == 0
}

// Params returns the parameter bindings of the set.
func (s PredicateSet) Params() Params {
	return s.params
}

func (s *PredicateSet) add(p Predicate) {
	s.preds = append(s.preds, p)
}

func (s *PredicateSet) bind(name string, value any) {
	if s.params == nil {
		s.params = Params{}
	}
	s.params[name] = value
}

// Render joins the predicates with AND against the given node variable.
// An empty set renders as the empty string.
func (s PredicateSet) Render(nodeVar string) string {
	parts := make([]string, len(s.preds))
	for i, p := range s.preds {
		parts[i] = p.Render(nodeVar)
	}
	return strings.Join(parts, " AND ")
}

// Where renders a full WHERE clause, or the empty string when the set is
// empty.
func (s PredicateSet) Where(nodeVar string) string {
	if s.Empty() {
		return ""
	}
	return "WHERE " + s.Render(nodeVar)
}

// Guard renders the endpoint condition used by the relation query: a node
// of the given label must satisfy the set, nodes of other labels pass.
func (s PredicateSet) Guard(nodeVar, label string) string {
	return fmt.Sprintf("(NOT %s:%s OR (%s))", nodeVar, label, s.Render(nodeVar))
}
