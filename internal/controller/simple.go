package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gutrun.dev/pkg/gutrun/internal/model"
)

const notSetLabel = "-"

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	commandStyle = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI with plain output.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Out returns the command's stdout.
func (s *SimpleUI) Out() io.Writer {
	return s.cmd.OutOrStdout()
}

// Err returns the command's stderr.
func (s *SimpleUI) Err() io.Writer {
	return s.cmd.ErrOrStderr()
}

// DisplayCommand echoes the command line that is (or would be) run.
func (s *SimpleUI) DisplayCommand(ctx context.Context, command string, dryRun bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	if dryRun {
		s.printf("%s\n", command)
		return
	}

	s.printf("%s\n", s.style(commandStyle, "$ "+command))
}

// DisplayScope prints the resolved scope as a small key/value block.
func (s *SimpleUI) DisplayScope(ctx context.Context, scope m.ScopeState, line int) {
	if err := ctx.Err(); err != nil {
		return
	}

	script, _ := scope.Script()
	class, _ := scope.InnerClass()
	method, _ := scope.Method()

	s.printf("%s %d\n", s.style(labelStyle, "line:  "), line)
	s.printf("%s %s\n", s.style(labelStyle, "script:"), s.style(valueStyle, orNotSet(script)))
	s.printf("%s %s\n", s.style(labelStyle, "class: "), s.style(valueStyle, orNotSet(class)))
	s.printf("%s %s\n", s.style(labelStyle, "method:"), s.style(valueStyle, orNotSet(method)))
}

// DisplayOptions prints GUT options exactly as they would be appended to a command.
func (s *SimpleUI) DisplayOptions(ctx context.Context, options string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", options)
}

// DisplaySymbols prints a symbol tree as a table, one row per symbol.
func (s *SimpleUI) DisplaySymbols(ctx context.Context, tree []m.SymbolNode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSymbolTable(tree))

	return nil
}

// DisplayLaunchConfig reports where a debug configuration was written.
func (s *SimpleUI) DisplayLaunchConfig(ctx context.Context, path m.Path, options string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s\n", s.style(labelStyle, "launch configuration:"), path)
	s.printf("%s %s\n", s.style(labelStyle, "additional options:  "), strings.TrimSpace(options))
}

func renderSymbolTable(tree []m.SymbolNode) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Symbol", "Kind", "Start", "End"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	count := appendSymbolRows(table, tree, 0)

	table.SetFooter([]string{fmt.Sprintf("Total Symbols %d", count), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func appendSymbolRows(table *tablewriter.Table, nodes []m.SymbolNode, depth int) int {
	count := 0

	for _, node := range nodes {
		table.Append([]string{
			strings.Repeat("    ", depth) + node.Name,
			node.Kind.String(),
			fmt.Sprintf("%d", node.Range.Start),
			fmt.Sprintf("%d", node.Range.End),
		})

		count++
		count += appendSymbolRows(table, node.Children, depth+1)
	}

	return count
}

func (s *SimpleUI) style(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func orNotSet(value string) string {
	if value == "" {
		return notSetLabel
	}

	return value
}
