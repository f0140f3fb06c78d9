package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bracketFormatter struct{}

func (bracketFormatter) ScriptFlag(v string) string { return "[s:" + v + "]" }
func (bracketFormatter) ClassFlag(v string) string  { return "[c:" + v + "]" }
func (bracketFormatter) MethodFlag(v string) string { return "[m:" + v + "]" }

func TestScopeState_RenderOrder(t *testing.T) {
	var s ScopeState
	s.SetMethod("test_one")
	s.SetInnerClass("Foo")
	s.SetScript("test_bar.gd")

	assert.Equal(t, "[s:test_bar.gd][c:Foo][m:test_one]", s.Render(bracketFormatter{}))
}

func TestScopeState_UnsetLevelsContributeNothing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *ScopeState)
		want  string
	}{
		{"empty", func(_ *ScopeState) {}, ""},
		{"script only", func(s *ScopeState) { s.SetScript("a.gd") }, "[s:a.gd]"},
		{"script and method", func(s *ScopeState) {
			s.SetScript("a.gd")
			s.SetMethod("test_x")
		}, "[s:a.gd][m:test_x]"},
		{"class without script", func(s *ScopeState) { s.SetInnerClass("Inner") }, "[c:Inner]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ScopeState
			tt.setup(&s)
			assert.Equal(t, tt.want, s.Render(bracketFormatter{}))
		})
	}
}

func TestScopeState_LevelsAreIndependent(t *testing.T) {
	var s ScopeState
	s.SetInnerClass("Foo")
	s.SetMethod("test_one")

	s.ClearMethod()
	name, ok := s.InnerClass()
	assert.True(t, ok)
	assert.Equal(t, "Foo", name)

	s.SetMethod("test_two")
	s.ClearInnerClass()
	name, ok = s.Method()
	assert.True(t, ok)
	assert.Equal(t, "test_two", name)

	_, ok = s.InnerClass()
	assert.False(t, ok)
}

func TestScopeState_Clear(t *testing.T) {
	var s ScopeState
	s.SetScript("a.gd")
	s.SetInnerClass("Foo")
	s.SetMethod("test_one")
	assert.False(t, s.Empty())

	s.Clear()
	assert.True(t, s.Empty())
	assert.Equal(t, "", s.Render(bracketFormatter{}))
}

func TestScopeState_EmptyNameIsStillSet(t *testing.T) {
	var s ScopeState
	s.SetMethod("")

	_, ok := s.Method()
	assert.True(t, ok)
	assert.Equal(t, "[m:]", s.Render(bracketFormatter{}))
}
