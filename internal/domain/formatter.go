package domain

import m "gutrun.dev/pkg/gutrun/internal/model"

// GUT command-line options understood by gut_cmdln.gd.
const (
	selectScriptOption = "gselect"
	innerClassOption   = "ginner_class"
	unitTestNameOption = "gunit_test_name"
)

// OptionFormatter renders scope levels as GUT command-line flags, quoting
// values for the shell that will run them.
type OptionFormatter struct {
	isPowerShell func() bool
}

var _ m.FlagFormatter = (*OptionFormatter)(nil)

// NewOptionFormatter constructs an OptionFormatter. isPowerShell is asked
// every time a value is quoted; a nil function means "not PowerShell".
func NewOptionFormatter(isPowerShell func() bool) *OptionFormatter {
	return &OptionFormatter{isPowerShell: isPowerShell}
}

// ScriptFlag returns the option that selects a test script.
func (f *OptionFormatter) ScriptFlag(value string) string {
	return f.option(selectScriptOption, value)
}

// ClassFlag returns the option that selects an inner class.
func (f *OptionFormatter) ClassFlag(value string) string {
	// Inner class names never need quoting today, but they go through the
	// same path as scripts in case that changes.
	return f.option(innerClassOption, value)
}

// MethodFlag returns the option that selects a single test.
func (f *OptionFormatter) MethodFlag(value string) string {
	return f.option(unitTestNameOption, value)
}

func (f *OptionFormatter) option(name, value string) string {
	return " -" + name + "=" + f.quote(value)
}

// quote wraps value in double quotes for PowerShell. Embedded quotes are not
// escaped.
func (f *OptionFormatter) quote(value string) string {
	if f.isPowerShell != nil && f.isPowerShell() {
		return `"` + value + `"`
	}

	return value
}
