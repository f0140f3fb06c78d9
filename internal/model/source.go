package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Shell is the executable of the shell that runs GUT commands
// (e.g. "/bin/bash", "powershell.exe", "C:\\Program Files\\PowerShell\\7\\pwsh.exe").
type Shell string

// IsPowerShell reports whether the shell belongs to the PowerShell family.
// The check is a case-insensitive substring match so that full paths and
// versioned names are recognized.
func (s Shell) IsPowerShell() bool {
	name := strings.ToLower(string(s))

	return strings.Contains(name, "powershell") || strings.Contains(name, "pwsh")
}

// Lines is an in-memory LineSource backed by a slice of line texts.
type Lines []string

// Line implements LineSource.
func (l Lines) Line(n int) (string, bool) {
	if n < 0 || n >= len(l) {
		return "", false
	}

	return l[n], true
}

// SplitLines splits document content into lines, accepting both \n and \r\n
// line endings.
func SplitLines(content string) Lines {
	if content == "" {
		return Lines{}
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")

	return Lines(strings.Split(content, "\n"))
}

// LineSource gives read access to the text of a document by 0-based line
// index. ok is false when the line does not exist.
type LineSource interface {
	Line(n int) (text string, ok bool)
}
