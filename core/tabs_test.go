package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func twoPaneHost() PaneHost {
	return NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', true, "two", 10),
	)
}

func TestPaneHostScopeTracksSelectionAndFocus(t *testing.T) {
	host := twoPaneHost()
	if got := host.Scope(); got != "pane:x:1" {
		t.Fatalf("scope mismatch: %s", got)
	}
	_, _ = host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyRight})
	if got := host.Scope(); got != "pane:x:2" {
		t.Fatalf("scope should follow selection: %s", got)
	}
	_, _ = host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := host.Scope(); got != "pane:x:2" {
		t.Fatalf("scope should follow focused pane: %s", got)
	}
}

func TestPaneHostEscDefocuses(t *testing.T) {
	host := twoPaneHost()
	_, _ = host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := host.ActivePaneTitle(); got != "Pane One" {
		t.Fatalf("expected pane one focused")
	}
	handled, _ := host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyEsc})
	if !handled {
		t.Fatalf("expected esc to be handled by pane host")
	}
	if got := host.Scope(); got != "pane:x:1" {
		t.Fatalf("expected selected scope after unfocus, got %s", got)
	}
}

func TestPaneHostFocusedDoesNotCaptureArrowKeys(t *testing.T) {
	host := twoPaneHost()
	_, _ = host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyEnter})
	handled, _ := host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyDown})
	if handled {
		t.Fatalf("expected down key to pass through when pane is focused")
	}
}

func TestPaneHostRefusesFocusOnStaticPane(t *testing.T) {
	host := NewPaneHost(NewStaticPane("p1", "Info", "pane:x:1", 'i', false, "text", 4))
	m := &Model{}
	_, _ = host.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if host.focused != -1 {
		t.Fatalf("non-focusable pane must not take focus")
	}
	if m.status != "Info cannot take focus" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestPaneHostJumpTargetsAndFocus(t *testing.T) {
	host := NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', false, "two", 10),
		NewStaticPane("p3", "Pane Three", "pane:x:3", 'h', true, "three", 10),
	)
	targets := host.JumpTargets()
	if len(targets) != 2 {
		t.Fatalf("jump target count = %d, want 2", len(targets))
	}
	handled, _ := host.JumpToTarget(&Model{}, "H")
	if !handled {
		t.Fatalf("expected jump target to be handled")
	}
	if got := host.ActivePaneTitle(); got != "Pane Three" {
		t.Fatalf("active pane mismatch: %s", got)
	}
}

func TestNewPaneHostRejectsDuplicateJumpKeys(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for duplicate jump keys")
		}
	}()
	NewPaneHost(
		NewStaticPane("a", "A", "pane:a", 'x', true, "", 3),
		NewStaticPane("b", "B", "pane:b", 'X', true, "", 3),
	)
}

type countingPane struct {
	*StaticPane
	keys  int
	other int
}

func (p *countingPane) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		p.keys++
	} else {
		p.other++
	}
	return nil
}

type tickMsg struct{}

func TestUpdateActiveBroadcastsNonKeyMessages(t *testing.T) {
	a := &countingPane{StaticPane: NewStaticPane("a", "A", "pane:a", 'a', true, "", 3)}
	b := &countingPane{StaticPane: NewStaticPane("b", "B", "pane:b", 'b', true, "", 3)}
	host := NewPaneHost(a, b)
	host.UpdateActive(&Model{}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	host.UpdateActive(&Model{}, tickMsg{})
	if a.keys != 1 || b.keys != 0 {
		t.Fatalf("keys should reach only the active pane: a=%d b=%d", a.keys, b.keys)
	}
	if a.other != 1 || b.other != 1 {
		t.Fatalf("non-key messages should reach every pane: a=%d b=%d", a.other, b.other)
	}
}
