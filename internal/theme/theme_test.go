package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState_DefaultsToDark(t *testing.T) {
	assert.Equal(t, Dark, NewState().Mode())
}

func TestToggle_IsAnInvolution(t *testing.T) {
	for _, m := range []Mode{Dark, Light} {
		assert.Equal(t, m, m.Toggled().Toggled(), m.String())
	}

	s := NewState()
	start := s.Mode()
	s.Toggle()
	s.Toggle()
	assert.Equal(t, start, s.Mode())
}

func TestSubscribe_NotifiedInOrder(t *testing.T) {
	s := NewState()

	var got []string
	s.Subscribe(func(m Mode) { got = append(got, "a:"+m.String()) })
	s.Subscribe(func(m Mode) { got = append(got, "b:"+m.String()) })

	s.Toggle()

	assert.Equal(t, []string{"a:light", "b:light"}, got)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := NewState()

	calls := 0
	unsubscribe := s.Subscribe(func(Mode) { calls++ })
	s.Toggle()
	unsubscribe()
	unsubscribe()
	s.Toggle()

	assert.Equal(t, 1, calls)
}

func TestPick(t *testing.T) {
	assert.Equal(t, "night", Dark.Pick("night", "day"))
	assert.Equal(t, "day", Light.Pick("night", "day"))
}

// Fresh load is dark; one click switches the marker to light; a second click
// brings it back.
func TestBind_ToggleScenario(t *testing.T) {
	s := NewState()
	root := NewRoot("scroll-smooth")
	Bind(s, root)

	assert.True(t, root.Contains(MarkerClass))
	assert.Equal(t, "scroll-smooth dark", root.Attr())

	s.Toggle()
	assert.False(t, root.Contains(MarkerClass))
	assert.Equal(t, "scroll-smooth", root.Attr())

	s.Toggle()
	assert.True(t, root.Contains(MarkerClass))
	assert.Equal(t, "scroll-smooth dark", root.Attr())
}

func TestBind_Unbind(t *testing.T) {
	s := NewState()
	root := NewRoot()
	unbind := Bind(s, root)

	unbind()
	s.Toggle()

	assert.True(t, root.Contains(MarkerClass), "root stops following once unbound")
}

func TestRoot_AddIgnoresDuplicatesAndBlanks(t *testing.T) {
	root := NewRoot("a", "a", " ", "b")
	root.Add("b")

	assert.Equal(t, "a b", root.Attr())
}
