package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gutrun.dev/pkg/gutrun/internal/adapter"
	"gutrun.dev/pkg/gutrun/internal/controller"
	"gutrun.dev/pkg/gutrun/internal/domain"
)

const (
	innerClassScript = "../examples/inner_class/test_bar.gd"
	flatScript       = "../examples/flat/test_flat.gd"
	flatSymbols      = "../examples/flat/test_flat.symbols.yaml"
)

// runExample executes a subcommand against the real adapters and returns its output.
func runExample(t *testing.T, sub *cobra.Command, args ...string) string {
	t.Helper()

	resetCommandFlags(t)

	root := newRootCmd()
	root.AddCommand(sub)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-file", logFileFor(t)))

	fs := adapter.NewLocalSourceFSAdapter()
	useWorkflow(t, domain.NewWorkflow(
		fs,
		adapter.NewLSPSymbolProviderAdapter(),
		adapter.NewLocalTerminalAdapter(),
		adapter.NewFileDebugLauncherAdapter(fs),
		controller.NewSimpleUI(root),
		domain.NewScopeResolver(),
	))

	require.NoError(t, root.Execute())

	return out.String()
}

func TestExamples_Options(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		symbols string
		line    string
		want    string
	}{
		{"inner class method", innerClassScript, "", "6", " -gselect=test_bar.gd -ginner_class=TestFoo -gunit_test_name=test_one"},
		{"gap after method", innerClassScript, "", "8", " -gselect=test_bar.gd -ginner_class=TestFoo"},
		{"second inner method", innerClassScript, "", "11", " -gselect=test_bar.gd -ginner_class=TestFoo -gunit_test_name=test_two"},
		{"top level method", innerClassScript, "", "14", " -gselect=test_bar.gd -gunit_test_name=test_outer"},
		{"script header", innerClassScript, "", "0", " -gselect=test_bar.gd"},
		{"flat inner method", flatScript, flatSymbols, "6", " -gselect=test_flat.gd -ginner_class=TestInner -gunit_test_name=test_inner"},
		{"flat top level method", flatScript, flatSymbols, "9", " -gselect=test_flat.gd -gunit_test_name=test_top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{"options", tt.script, "--line", tt.line, "--shell", "/bin/sh"}
			if tt.symbols != "" {
				args = append(args, "--symbols", tt.symbols)
			}

			out := runExample(t, newOptionsCmd(), args...)

			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestExamples_OptionsExplain(t *testing.T) {
	out := runExample(t, newOptionsCmd(), "options", innerClassScript, "--line", "11", "--explain", "--shell", "pwsh")

	assert.Contains(t, out, "method: test_two")
	assert.Contains(t, out, "class:  TestFoo")
	assert.True(t, strings.HasSuffix(out, ` -gselect="test_bar.gd" -ginner_class="TestFoo" -gunit_test_name="test_two"`+"\n"))
}

func TestExamples_CursorDryRun(t *testing.T) {
	godot := filepath.Join(t.TempDir(), "Godot")
	require.NoError(t, os.WriteFile(godot, nil, 0o600))

	out := runExample(t, newCursorCmd(), "cursor", innerClassScript, "--line", "6", "--dry-run", "--godot", godot, "--shell", "/bin/sh")

	assert.Equal(t,
		`"`+godot+`" -d -s res://addons/gut/gut_cmdln.gd -gselect=test_bar.gd -ginner_class=TestFoo -gunit_test_name=test_one`+"\n",
		out)
}

func TestExamples_Symbols(t *testing.T) {
	out := runExample(t, newSymbolsCmd(), "symbols", flatSymbols)

	for _, want := range []string{"test_flat.gd", "TestInner", "test_inner", "test_top"} {
		assert.Contains(t, out, want)
	}
}
