package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShell_IsPowerShell(t *testing.T) {
	tests := []struct {
		shell Shell
		want  bool
	}{
		{"powershell.exe", true},
		{"C:\\Windows\\System32\\WindowsPowerShell\\v1.0\\powershell.exe", true},
		{"pwsh", true},
		{"/usr/local/bin/pwsh", true},
		{"PWSH.EXE", true},
		{"PowerShell", true},
		{"/bin/bash", false},
		{"cmd.exe", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shell.IsPowerShell())
		})
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("extends GutTest\r\n\nfunc test_a():\n\tpass")
	assert.Equal(t, Lines{"extends GutTest", "", "func test_a():", "\tpass"}, lines)

	assert.Empty(t, SplitLines(""))
}

func TestLines_Line(t *testing.T) {
	lines := Lines{"a", "b"}

	text, ok := lines.Line(1)
	assert.True(t, ok)
	assert.Equal(t, "b", text)

	_, ok = lines.Line(2)
	assert.False(t, ok)

	_, ok = lines.Line(-1)
	assert.False(t, ok)
}

func TestSymbolKind_String(t *testing.T) {
	assert.Equal(t, "script", KindScript.String())
	assert.Equal(t, "method", KindMethod.String())
	assert.Equal(t, "kind(42)", SymbolKind(42).String())
}

func TestPath_Base(t *testing.T) {
	assert.Equal(t, "test_bar.gd", Path("res/test/unit/test_bar.gd").Base())
}
