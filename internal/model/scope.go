package model

// FlagFormatter turns a resolved scope level into a runner flag.
type FlagFormatter interface {
	ScriptFlag(value string) string
	ClassFlag(value string) string
	MethodFlag(value string) string
}

type scopeLevel struct {
	name string
	set  bool
}

func (l *scopeLevel) assign(name string) {
	l.name = name
	l.set = true
}

func (l *scopeLevel) reset() {
	*l = scopeLevel{}
}

// ScopeState accumulates the script, inner class and method that enclose a
// cursor. The three levels are independent: setting one never clears another.
type ScopeState struct {
	script     scopeLevel
	innerClass scopeLevel
	method     scopeLevel
}

// SetScript records the script name.
func (s *ScopeState) SetScript(name string) {
	s.script.assign(name)
}

// SetInnerClass records the enclosing inner class.
func (s *ScopeState) SetInnerClass(name string) {
	s.innerClass.assign(name)
}

// ClearInnerClass unsets the inner class.
func (s *ScopeState) ClearInnerClass() {
	s.innerClass.reset()
}

// SetMethod records the enclosing method.
func (s *ScopeState) SetMethod(name string) {
	s.method.assign(name)
}

// ClearMethod unsets the method.
func (s *ScopeState) ClearMethod() {
	s.method.reset()
}

// Clear unsets every level.
func (s *ScopeState) Clear() {
	s.script.reset()
	s.innerClass.reset()
	s.method.reset()
}

// Script returns the script name and whether it is set.
func (s ScopeState) Script() (string, bool) {
	return s.script.name, s.script.set
}

// InnerClass returns the inner class name and whether it is set.
func (s ScopeState) InnerClass() (string, bool) {
	return s.innerClass.name, s.innerClass.set
}

// Method returns the method name and whether it is set.
func (s ScopeState) Method() (string, bool) {
	return s.method.name, s.method.set
}

// Empty reports whether no level is set.
func (s ScopeState) Empty() bool {
	return !s.script.set && !s.innerClass.set && !s.method.set
}

// Render concatenates the flags of every set level. The order is always
// script, inner class, method: the runner expects the script selection first.
func (s ScopeState) Render(f FlagFormatter) string {
	options := ""

	if s.script.set {
		options += f.ScriptFlag(s.script.name)
	}

	if s.innerClass.set {
		options += f.ClassFlag(s.innerClass.name)
	}

	if s.method.set {
		options += f.MethodFlag(s.method.name)
	}

	return options
}
