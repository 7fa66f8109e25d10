package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputNotifiesOnChange(t *testing.T) {
	var got []string
	f := New(Props{OnChange: func(v string) { got = append(got, v) }})
	require.True(t, f.Input("t"))
	require.True(t, f.Input("te"))
	assert.Equal(t, []string{"t", "te"}, got)
	assert.Equal(t, "te", f.Value())
}

func TestDisabledSuppressesNotifier(t *testing.T) {
	calls := 0
	f := New(Props{Disabled: true, OnChange: func(string) { calls++ }})
	assert.False(t, f.Input("test"))
	assert.Zero(t, calls)
}

func TestBusySuppressesNotifierAndAffordances(t *testing.T) {
	calls := 0
	f := New(Props{
		Value:      "secret",
		Busy:       true,
		Clearable:  true,
		Revealable: true,
		Kind:       KindSecret,
		OnChange:   func(string) { calls++ },
	})
	for _, r := range "typed" {
		f.Input(f.Value() + string(r))
	}
	assert.Zero(t, calls, "busy field must not notify")
	assert.False(t, f.ClearVisible())
	assert.False(t, f.RevealVisible())
	assert.False(t, f.Clear())
	assert.False(t, f.ToggleReveal())
	assert.True(t, f.Masked())
}

func TestClearSendsEmptyValue(t *testing.T) {
	var got []string
	f := New(Props{Value: "test", Clearable: true, OnChange: func(v string) { got = append(got, v) }})
	require.True(t, f.ClearVisible())
	require.True(t, f.Clear())
	assert.Equal(t, []string{""}, got)
	assert.False(t, f.ClearVisible(), "nothing left to clear")
}

func TestClearHiddenWithoutValueOrFlag(t *testing.T) {
	assert.False(t, New(Props{Clearable: true}).ClearVisible())
	assert.False(t, New(Props{Value: "x"}).ClearVisible())
}

func TestRevealTogglesMaskOnly(t *testing.T) {
	f := New(Props{Value: "hunter22", Kind: KindSecret, Revealable: true})
	require.True(t, f.Masked())
	require.Equal(t, KindSecret, f.RenderedKind())

	require.True(t, f.ToggleReveal())
	assert.False(t, f.Masked())
	assert.Equal(t, KindText, f.RenderedKind())
	assert.Equal(t, "hunter22", f.Value())

	require.True(t, f.ToggleReveal())
	assert.True(t, f.Masked())
}

func TestRevealRequiresSecretKind(t *testing.T) {
	f := New(Props{Kind: KindText, Revealable: true})
	assert.False(t, f.RevealVisible())
	assert.False(t, f.Masked())

	locked := New(Props{Kind: KindSecret})
	assert.False(t, locked.ToggleReveal())
	assert.True(t, locked.Masked())
}

func TestErrorHidesHelperAndSetsDescribedBy(t *testing.T) {
	f := New(Props{Label: "Email", Invalid: true, Error: "Invalid email", Helper: "Enter your email"})
	msg, kind := f.Message()
	assert.Equal(t, "Invalid email", msg)
	assert.Equal(t, MessageError, kind)
	assert.Equal(t, ErrorMessageID, f.DescribedBy())
	assert.True(t, f.AriaInvalid())

	helper := New(Props{Helper: "This is helpful information"})
	msg, kind = helper.Message()
	assert.Equal(t, "This is helpful information", msg)
	assert.Equal(t, MessageHelper, kind)
	assert.Equal(t, HelperTextID, helper.DescribedBy())

	assert.Empty(t, New(Props{}).DescribedBy())
}

func TestSetPropsKeepsReveal(t *testing.T) {
	f := New(Props{Kind: KindSecret, Revealable: true})
	f.ToggleReveal()
	f.SetProps(Props{Kind: KindSecret, Revealable: true, Value: "abc"})
	assert.True(t, f.Revealed())
	assert.False(t, f.Masked())
}
