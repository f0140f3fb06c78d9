package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"gopkg.in/yaml.v3"

	m "gutrun.dev/pkg/gutrun/internal/model"
)

// StdinPath tells the symbol provider to read the dump from standard input.
const StdinPath m.Path = "-"

const godotScriptSuffix = ".gd"

// ErrUnsupportedSymbolFormat is returned for dumps that are neither JSON nor YAML.
var ErrUnsupportedSymbolFormat = errors.New("unsupported symbol dump format")

// SymbolFormat identifies the encoding of a document-symbol dump.
type SymbolFormat int

const (
	// FormatJSON is an LSP textDocument/documentSymbol result encoded as JSON.
	FormatJSON SymbolFormat = iota
	// FormatYAML is the same structure written as YAML.
	FormatYAML
)

// SymbolProviderAdapter loads the document-symbol tree of a script as
// produced by a language server.
type SymbolProviderAdapter interface {
	// Load reads a dump from path (or stdin for StdinPath) and converts it
	// into logical symbol nodes.
	Load(ctx context.Context, path m.Path) ([]m.SymbolNode, error)

	// Decode converts a dump read from r.
	Decode(r io.Reader, format SymbolFormat) ([]m.SymbolNode, error)
}

// LSPSymbolProviderAdapter decodes LSP DocumentSymbol dumps.
type LSPSymbolProviderAdapter struct {
	stdin io.Reader
}

// NewLSPSymbolProviderAdapter constructs an adapter that reads stdin from os.Stdin.
func NewLSPSymbolProviderAdapter() *LSPSymbolProviderAdapter {
	return &LSPSymbolProviderAdapter{stdin: os.Stdin}
}

// NewLSPSymbolProviderAdapterWithStdin constructs an adapter reading stdin dumps from r.
func NewLSPSymbolProviderAdapterWithStdin(r io.Reader) *LSPSymbolProviderAdapter {
	return &LSPSymbolProviderAdapter{stdin: r}
}

// Load reads and converts the dump at path.
func (a *LSPSymbolProviderAdapter) Load(ctx context.Context, path m.Path) ([]m.SymbolNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path == StdinPath {
		return a.Decode(a.stdin, FormatYAML)
	}

	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - path is the symbol dump the user asked for
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	return a.Decode(f, format)
}

// Decode converts the dump read from r. A single root object is accepted as
// well as a list of symbols.
func (a *LSPSymbolProviderAdapter) Decode(r io.Reader, format SymbolFormat) ([]m.SymbolNode, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read symbol dump: %w", err)
	}

	if format == FormatYAML {
		raw, err = yamlToJSON(raw)
		if err != nil {
			return nil, err
		}
	}

	symbols, err := decodeDocumentSymbols(raw)
	if err != nil {
		return nil, err
	}

	nodes, err := convertSymbols(symbols, true)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded symbol tree", "roots", len(nodes))

	return nodes, nil
}

func formatForPath(path m.Path) (SymbolFormat, error) {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrUnsupportedSymbolFormat, path)
}

// yamlToJSON normalises a YAML dump so both encodings go through the LSP
// JSON field names.
func yamlToJSON(raw []byte) ([]byte, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []byte("[]"), nil
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml symbol dump: %w", err)
	}

	if doc == nil {
		return []byte("[]"), nil
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encode yaml symbol dump: %w", err)
	}

	return out, nil
}

func decodeDocumentSymbols(raw []byte) ([]protocol.DocumentSymbol, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '{' {
		var root protocol.DocumentSymbol
		if err := json.Unmarshal(trimmed, &root); err != nil {
			return nil, fmt.Errorf("decode document symbol: %w", err)
		}

		return []protocol.DocumentSymbol{root}, nil
	}

	var symbols []protocol.DocumentSymbol
	if err := json.Unmarshal(trimmed, &symbols); err != nil {
		return nil, fmt.Errorf("decode document symbols: %w", err)
	}

	return symbols, nil
}

func convertSymbols(symbols []protocol.DocumentSymbol, topLevel bool) ([]m.SymbolNode, error) {
	nodes := make([]m.SymbolNode, 0, len(symbols))

	for _, symbol := range symbols {
		start, err := safecast.Conv[int](symbol.Range.Start.Line)
		if err != nil {
			return nil, fmt.Errorf("symbol %q start line: %w", symbol.Name, err)
		}

		end, err := safecast.Conv[int](symbol.Range.End.Line)
		if err != nil {
			return nil, fmt.Errorf("symbol %q end line: %w", symbol.Name, err)
		}

		children, err := convertSymbols(symbol.Children, false)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, m.SymbolNode{
			Name:     symbol.Name,
			Kind:     symbolKind(symbol.Kind, symbol.Name, topLevel),
			Range:    m.LineRange{Start: start, End: end},
			Children: children,
		})
	}

	return nodes, nil
}

// symbolKind maps LSP kinds onto the logical enum. The Godot language server
// reports the script itself as a top-level Class named after the file.
func symbolKind(kind protocol.SymbolKind, name string, topLevel bool) m.SymbolKind {
	switch kind {
	case protocol.SymbolKindFile, protocol.SymbolKindModule:
		return m.KindScript
	case protocol.SymbolKindClass:
		if topLevel && strings.HasSuffix(name, godotScriptSuffix) {
			return m.KindScript
		}

		return m.KindClass
	case protocol.SymbolKindMethod, protocol.SymbolKindFunction, protocol.SymbolKindConstructor:
		return m.KindMethod
	}

	return m.KindOther
}
