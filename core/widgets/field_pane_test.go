package widgets

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskui/core/field"
)

func typeText(p *FieldPane, text string) {
	for _, r := range text {
		p.Update(runeKey(r))
	}
}

func TestFieldPaneTypingNotifiesHost(t *testing.T) {
	var got []string
	p := NewFieldPane("email", "Email", "pane:inputs:email", 'e', field.New(field.Props{
		Label:    "Email",
		OnChange: func(v string) { got = append(got, v) },
	}))
	typeText(p, "ab")
	assert.Empty(t, got, "unfocused pane must not take input")

	p.OnFocus()
	typeText(p, "ab")
	assert.Equal(t, []string{"a", "ab"}, got)
	assert.Equal(t, "ab", p.Field().Value())
	assert.True(t, p.CapturesInput())
}

func TestFieldPaneBusySuppressesInput(t *testing.T) {
	calls := 0
	p := NewFieldPane("loading", "Loading", "pane:inputs:loading", 'l', field.New(field.Props{
		Busy:     true,
		OnChange: func(string) { calls++ },
	}))
	require.NotNil(t, p.Init(), "busy field should start its spinner")
	p.OnFocus()
	typeText(p, "test")
	assert.Zero(t, calls)
	assert.Empty(t, p.Field().Value())
}

func TestFieldPaneClearAndReveal(t *testing.T) {
	var got []string
	f := field.New(field.Props{
		Value:      "hunter22",
		Kind:       field.KindSecret,
		Revealable: true,
		Clearable:  true,
		OnChange:   func(v string) { got = append(got, v) },
	})
	p := NewFieldPane("password", "Password", "pane:inputs:password", 'p', f)
	p.OnFocus()

	masked := p.InputView()
	assert.NotContains(t, masked, "hunter22")
	assert.Contains(t, masked, "•")
	assert.Contains(t, p.Frame().Trailing, GlyphShow)

	p.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, f.Revealed())
	assert.Contains(t, p.Frame().Trailing, GlyphHide)
	assert.Equal(t, []string(nil), got, "reveal must not touch the value")

	p.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Equal(t, []string{""}, got)
	assert.NotContains(t, p.Frame().Trailing, GlyphClear)
}

func TestFieldPaneSetPropsRestartsSpinner(t *testing.T) {
	p := NewFieldPane("f", "F", "pane:f", 'f', field.New(field.Props{}))
	assert.Nil(t, p.SetProps(field.Props{Value: "x"}))
	assert.NotNil(t, p.SetProps(field.Props{Value: "x", Busy: true}))
	assert.Nil(t, p.SetProps(field.Props{Value: "x", Busy: true}))
}

func TestFieldPaneViewShowsErrorInsteadOfHelper(t *testing.T) {
	p := NewFieldPane("pw", "Password", "pane:pw", 'p', field.New(field.Props{
		Label:   "Password",
		Helper:  "Use a strong password",
		Error:   "Password must be at least 8 characters",
		Invalid: true,
		Kind:    field.KindSecret,
	}))
	out := p.View(60, 10, false, false)
	assert.Contains(t, out, GlyphError+" Password must be at least 8 characters")
	assert.NotContains(t, out, "Use a strong password")
	assert.True(t, strings.Contains(out, "Password"))
}
