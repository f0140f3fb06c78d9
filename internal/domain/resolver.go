package domain

import (
	"log/slog"
	"strings"
	"unicode"

	m "gutrun.dev/pkg/gutrun/internal/model"
)

const (
	// ScriptExtension is the extension of the scripts GUT can run.
	ScriptExtension = ".gd"

	commentMarker = "#"

	// unknownIndent is used when the line a symbol starts on cannot be read.
	// It is shallower than any real indentation.
	unknownIndent = -1
)

// ScopeResolver finds the script, inner class and method that enclose a line
// of a test script.
type ScopeResolver interface {
	// Resolve walks the top-level symbols of one document and returns the
	// scope enclosing targetLine. lines gives access to the document text;
	// it may be nil, in which case every line is treated as unreadable.
	Resolve(tree []m.SymbolNode, targetLine int, lines m.LineSource) m.ScopeState
}

type scopeResolver struct{}

// NewScopeResolver constructs a ScopeResolver. The resolver keeps no state
// between calls and is safe for concurrent use.
func NewScopeResolver() ScopeResolver {
	return &scopeResolver{}
}

func (r *scopeResolver) Resolve(tree []m.SymbolNode, targetLine int, lines m.LineSource) m.ScopeState {
	var state m.ScopeState

	if len(tree) == 0 {
		slog.Debug("empty symbol tree, nothing to resolve")
		return state
	}

	root := tree[0]
	if root.Kind != m.KindScript || !strings.HasSuffix(root.Name, ScriptExtension) {
		slog.Debug("root symbol is not a test script", "name", root.Name, "kind", root.Kind)
		return state
	}

	res := &resolution{
		lines:      lines,
		targetLine: targetLine,
	}
	res.state.SetScript(root.Name)
	res.traverse(root.Children)

	slog.Debug("resolved scope", "script", root.Name, "line", targetLine, "visited", res.visited)

	return res.state
}

// resolution is the context of a single Resolve call.
type resolution struct {
	state      m.ScopeState
	lines      m.LineSource
	targetLine int

	// currentIndent is the indentation of the last processed symbol. A drop
	// below it means the inner class entered earlier has ended.
	currentIndent int
	visited       int
}

// traverse visits symbols depth-first. Siblings are in source order, so the
// first one starting after the target line ends the walk of that level.
func (r *resolution) traverse(nodes []m.SymbolNode) {
	for i := range nodes {
		node := &nodes[i]
		if node.Range.Start > r.targetLine {
			return
		}

		r.process(node)
		r.traverse(node.Children)
	}
}

func (r *resolution) process(node *m.SymbolNode) {
	r.visited++

	indent := r.indentation(node.Range.Start)
	if indent < r.currentIndent {
		r.state.ClearInnerClass()
	}

	r.currentIndent = indent

	switch node.Kind {
	case m.KindClass:
		r.state.SetInnerClass(node.Name)
		r.state.ClearMethod()
	case m.KindMethod:
		// A degenerate range has no body to inspect, so the gap check
		// below would never let the method through.
		if node.Range.Degenerate() || !r.onlyBlankThrough(node.Range.End) {
			r.state.SetMethod(node.Name)
		}
	}
}

// indentation counts the leading whitespace of a line.
func (r *resolution) indentation(n int) int {
	text, ok := r.line(n)
	if !ok {
		return unknownIndent
	}

	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)

	return len([]rune(text)) - len([]rune(trimmed))
}

// onlyBlankThrough reports whether every line from the target line through
// end is blank or a comment, i.e. the cursor sits in the gap after a method.
func (r *resolution) onlyBlankThrough(end int) bool {
	for n := r.targetLine; n <= end; n++ {
		text, ok := r.line(n)
		if !ok {
			return false
		}

		text = strings.TrimSpace(text)
		if text != "" && !strings.HasPrefix(text, commentMarker) {
			return false
		}
	}

	return true
}

func (r *resolution) line(n int) (string, bool) {
	if r.lines == nil {
		return "", false
	}

	return r.lines.Line(n)
}
