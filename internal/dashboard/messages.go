package dashboard

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskdash/internal/tabsapi"
)

// TabsLoadedMsg carries the result of the initial list request.
type TabsLoadedMsg struct {
	Tabs []Tab
	Err  error
}

// TabCreatedMsg carries the result of a create request. Tab is the canonical
// tab returned by the server and is only meaningful when Err is nil.
type TabCreatedMsg struct {
	Candidate Tab
	Tab       Tab
	Err       error
}

// TabDeletedMsg carries the outcome of a delete request. Local state was
// already updated when the request was issued.
type TabDeletedMsg struct {
	ID  string
	Err error
}

// Init returns the list request issued once when the dashboard mounts.
func (v *View) Init() tea.Cmd {
	ctx, remote := v.ctx, v.remote
	return func() tea.Msg {
		tabs, err := remote.List(ctx)
		return TabsLoadedMsg{Tabs: tabs, Err: err}
	}
}

// Handle merges a remote result into local state. It reports whether msg was
// one of the dashboard's messages. Failures are logged and otherwise dropped.
// A result holding a tab without an id counts as a failure, so a tab in local
// state can always become the active one.
func (v *View) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case TabsLoadedMsg:
		if msg.Err == nil && slices.ContainsFunc(msg.Tabs, func(t Tab) bool { return t.ID == "" }) {
			msg.Err = tabsapi.ErrMissingID
		}
		if msg.Err != nil {
			v.log.Error("list tabs failed", "err", msg.Err)
			return true
		}
		v.tabs = append([]Tab(nil), msg.Tabs...)
		v.active = ""
		if len(v.tabs) > 0 {
			v.active = v.tabs[0].ID
		}
		v.log.Info("tabs loaded", "count", len(v.tabs))
		return true
	case TabCreatedMsg:
		if msg.Err == nil && msg.Tab.ID == "" {
			msg.Err = tabsapi.ErrMissingID
		}
		if msg.Err != nil {
			v.log.Error("create tab failed", "id", msg.Candidate.ID, "title", msg.Candidate.Title, "err", msg.Err)
			return true
		}
		wasEmpty := len(v.tabs) == 0
		v.tabs = append(v.tabs, msg.Tab)
		if wasEmpty {
			v.active = msg.Tab.ID
		}
		v.input = ""
		v.setForm(FormClosed)
		v.log.Info("tab created", "id", msg.Tab.ID, "title", msg.Tab.Title)
		return true
	case TabDeletedMsg:
		if msg.Err != nil {
			v.log.Error("delete tab failed", "id", msg.ID, "err", msg.Err)
			return true
		}
		v.log.Debug("tab deleted", "id", msg.ID)
		return true
	}
	return false
}
