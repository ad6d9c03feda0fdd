package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/ribbon/pkg/widget"
)

// Finder locates nodes in the live tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root widget.Node) []widget.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []widget.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widget.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() widget.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widget.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []widget.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Item returns the first match as an item. Panics if it is not one.
func (r FinderResult) Item() widget.Item {
	it, ok := r.First().(widget.Item)
	if !ok {
		panic(fmt.Sprintf("Finder match is a %T, not an item: %s", r.First(), r.describe()))
	}
	return it
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

type typeFinder struct {
	nodeType reflect.Type
}

func (f *typeFinder) Evaluate(root widget.Node) []widget.Node {
	return collectMatches(root, func(n widget.Node) bool {
		return reflect.TypeOf(n) == f.nodeType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.nodeType)
}

// ByType returns a finder that matches nodes of type T.
func ByType[T widget.Node]() Finder {
	return &typeFinder{nodeType: reflect.TypeFor[T]()}
}

type fieldFinder struct {
	name  string
	value string
	get   func(*widget.Element) string
}

func (f *fieldFinder) Evaluate(root widget.Node) []widget.Node {
	return collectMatches(root, func(n widget.Node) bool {
		return f.get(n.Base()) == f.value
	})
}

func (f *fieldFinder) Description() string {
	return fmt.Sprintf("%s(%q)", f.name, f.value)
}

// ByID matches nodes whose declared id is id.
func ByID(id string) Finder {
	return &fieldFinder{name: "ByID", value: id, get: func(e *widget.Element) string { return e.ID }}
}

// ByPath matches the node registered under an identity path.
func ByPath(path string) Finder {
	return &fieldFinder{name: "ByPath", value: path, get: func(e *widget.Element) string { return e.Path }}
}

// ByCookie matches nodes by their resolved cookie.
func ByCookie(cookie string) Finder {
	return &fieldFinder{name: "ByCookie", value: cookie, get: func(e *widget.Element) string { return e.Cookie }}
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(root widget.Node) []widget.Node {
	return collectMatches(root, func(n widget.Node) bool {
		it, ok := n.(widget.Item)
		if !ok {
			return false
		}
		if f.contains {
			return strings.Contains(it.Item().Text, f.text)
		}
		return it.Item().Text == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText matches items whose text is exactly text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining matches items whose text contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

type commandFinder struct {
	command string
}

func (f *commandFinder) Evaluate(root widget.Node) []widget.Node {
	return collectMatches(root, func(n widget.Node) bool {
		c, ok := n.(widget.CommandNode)
		return ok && c.CommandFields().Command == f.command
	})
}

func (f *commandFinder) Description() string {
	return fmt.Sprintf("ByCommand(%q)", f.command)
}

// ByCommand matches command items bound to command.
func ByCommand(command string) Finder {
	return &commandFinder{command: command}
}

type predicateFinder struct {
	fn   func(widget.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root widget.Node) []widget.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder using a custom predicate.
func ByPredicate(fn func(widget.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(custom)"}
}

// descendantFinder finds nodes matching 'matching' below nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root widget.Node) []widget.Node {
	var results []widget.Node
	seen := make(map[widget.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range widget.Children(ancestor) {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds nodes matching 'matching' above nodes matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root widget.Node) []widget.Node {
	descendants := f.of.Evaluate(root)
	if len(descendants) == 0 {
		return nil
	}
	var results []widget.Node
	for _, candidate := range f.matching.Evaluate(root) {
		for _, desc := range descendants {
			if candidate != desc && isAncestorOf(candidate, desc) {
				results = append(results, candidate)
				break
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches nodes satisfying 'matching'
// that are ancestors of nodes matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

func isAncestorOf(ancestor, descendant widget.Node) bool {
	found := false
	walkTree(ancestor, func(n widget.Node) bool {
		if n == descendant {
			found = true
			return false
		}
		return true
	})
	return found
}

// collectMatches performs depth-first pre-order traversal, collecting
// nodes that satisfy the predicate.
func collectMatches(root widget.Node, predicate func(widget.Node) bool) []widget.Node {
	var results []widget.Node
	walkTree(root, func(n widget.Node) bool {
		if predicate(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}

// walkTree performs a depth-first pre-order traversal of the live tree.
// The visitor returns false to stop traversal.
func walkTree(root widget.Node, visitor func(widget.Node) bool) bool {
	if !visitor(root) {
		return false
	}
	for _, child := range widget.Children(root) {
		if !walkTree(child, visitor) {
			return false
		}
	}
	return true
}
