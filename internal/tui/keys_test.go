package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry(DefaultBindings())
	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	if !reg.IsAction(q, actionQuit, scopeDashboard) {
		t.Fatalf("expected q to quit on the dashboard")
	}
	if reg.IsAction(q, actionQuit, scopeForm) {
		t.Fatalf("q must be typeable in the form")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlC}, actionQuit, scopeForm) {
		t.Fatalf("ctrl+c should quit from the form")
	}
	alt2 := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true}
	if !reg.IsAction(alt2, actionRemoveAt, scopeDashboard) || reg.IsAction(alt2, actionPick, scopeDashboard) {
		t.Fatalf("alt+2 should remove by position, not select")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, actionSubmit, scopeJump) {
		t.Fatalf("enter should submit a jump")
	}
}

func TestHelpUsesLabels(t *testing.T) {
	reg := NewKeyRegistry(DefaultBindings())
	found := false
	for _, h := range reg.Help(scopeDashboard) {
		if h.Key == "1-9" && h.Desc == "select" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 1-9 help entry")
	}
	if len(reg.Help(scopeForm)) != 3 {
		t.Fatalf("form scope should show submit, cancel and quit")
	}
}
