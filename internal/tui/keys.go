package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Scopes decide which bindings are live.
const (
	scopeDashboard = "dashboard"
	scopeForm      = "form"
	scopeJump      = "jump"
)

// Actions.
const (
	actionQuit     = "quit"
	actionAdd      = "add"
	actionSubmit   = "submit"
	actionCancel   = "cancel"
	actionNext     = "next"
	actionPrev     = "prev"
	actionPick     = "pick"
	actionRemove   = "remove"
	actionRemoveAt = "remove-at"
	actionJump     = "jump"
)

type KeyBinding struct {
	Keys        []string
	Help        string // footer label, defaults to Keys[0]
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultBindings is the dashboard keymap.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"a", "+"}, Action: actionAdd, Description: "add tab", Scopes: []string{scopeDashboard}},
		{Keys: []string{"right", "l", "tab"}, Help: "→", Action: actionNext, Description: "next", Scopes: []string{scopeDashboard}},
		{Keys: []string{"left", "h", "shift+tab"}, Help: "←", Action: actionPrev, Description: "prev", Scopes: []string{scopeDashboard}},
		{Keys: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, Help: "1-9", Action: actionPick, Description: "select", Scopes: []string{scopeDashboard}},
		{Keys: []string{"x", "delete"}, Action: actionRemove, Description: "remove tab", Scopes: []string{scopeDashboard}},
		{Keys: []string{"alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"}, Help: "alt+1-9", Action: actionRemoveAt, Description: "remove #", Scopes: []string{scopeDashboard}},
		{Keys: []string{"/"}, Action: actionJump, Description: "jump", Scopes: []string{scopeDashboard}},
		{Keys: []string{"enter"}, Action: actionSubmit, Description: "add", Scopes: []string{scopeForm}},
		{Keys: []string{"enter"}, Action: actionSubmit, Description: "go", Scopes: []string{scopeJump}},
		{Keys: []string{"esc"}, Action: actionCancel, Description: "cancel", Scopes: []string{scopeForm, scopeJump}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeDashboard}},
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeForm, scopeJump}},
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// Help returns footer entries for scope.
func (r *KeyRegistry) Help(scope string) []key.Help {
	bindings := r.BindingsForScope(scope)
	out := make([]key.Help, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		label := b.Help
		if label == "" {
			label = b.Keys[0]
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(label, b.Description))
		out = append(out, kb.Help())
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
