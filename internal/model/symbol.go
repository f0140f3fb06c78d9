// Package model defines the data structures shared by the scope resolver,
// the adapters and the UI.
package model

import "fmt"

// SymbolKind is the logical role of a symbol. Providers encode kinds with
// their own numeric codes; adapters map those codes onto this enum.
type SymbolKind int

const (
	// KindOther covers every symbol the resolver does not care about
	// (variables, constants, signals, enums...).
	KindOther SymbolKind = iota
	// KindScript is the root node of a test script.
	KindScript
	// KindClass is an inner class of a test script.
	KindClass
	// KindMethod is a method, usually a test.
	KindMethod
)

var kindNames = map[SymbolKind]string{
	KindOther:  "other",
	KindScript: "script",
	KindClass:  "class",
	KindMethod: "method",
}

// String returns the human-readable name of the kind.
func (k SymbolKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// LineRange is an inclusive, 0-indexed span of lines.
type LineRange struct {
	Start int
	End   int
}

// Degenerate reports whether the range covers its start line only. Some
// providers report methods this way, losing the span of the body.
func (r LineRange) Degenerate() bool {
	return r.Start == r.End
}

// SymbolNode is one declaration of a document-symbol tree.
type SymbolNode struct {
	Name     string
	Kind     SymbolKind
	Range    LineRange
	Children []SymbolNode
}
