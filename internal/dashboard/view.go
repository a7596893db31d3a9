package dashboard

import (
	"context"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/jaskdash/internal/ids"
	"github.com/jask/jaskdash/internal/logging"
	"github.com/jask/jaskdash/internal/tabsapi"
)

// Tab is one named content panel.
type Tab = tabsapi.Tab

// Remote is the tabs collection the dashboard syncs with.
type Remote interface {
	List(ctx context.Context) ([]Tab, error)
	Create(ctx context.Context, tab Tab) (Tab, error)
	Delete(ctx context.Context, id string) error
}

// FormState is the add-tab form state.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
)

func (s FormState) String() string {
	if s == FormOpen {
		return "open"
	}
	return "closed"
}

// View owns all dashboard state. It is not safe for concurrent use; every
// method is called from the bubbletea event loop.
type View struct {
	ctx    context.Context
	remote Remote
	ids    ids.Generator
	log    *log.Logger
	stats  []StatCard

	tabs   []Tab
	active string // "" means no tab is active
	form   FormState
	input  string
}

// New builds a view with no tabs and the form closed. Call Init once to load
// the tab list.
func New(ctx context.Context, remote Remote, gen ids.Generator, logger *log.Logger, stats []StatCard) *View {
	if ctx == nil {
		ctx = context.Background()
	}
	if gen == nil {
		gen = ids.Timestamp{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &View{
		ctx:    ctx,
		remote: remote,
		ids:    gen,
		log:    logger,
		stats:  slices.Clone(stats),
	}
}

// Tabs returns a copy of the local tab list in insertion order.
func (v *View) Tabs() []Tab { return slices.Clone(v.tabs) }

// ActiveID returns the active tab id, or "" when no tab is active.
func (v *View) ActiveID() string { return v.active }

// ActiveTab returns the active tab, if any.
func (v *View) ActiveTab() (Tab, bool) {
	if v.active == "" {
		return Tab{}, false
	}
	for _, t := range v.tabs {
		if t.ID == v.active {
			return t, true
		}
	}
	return Tab{}, false
}

// ActiveIndex returns the position of the active tab, or -1.
func (v *View) ActiveIndex() int {
	if v.active == "" {
		return -1
	}
	return slices.IndexFunc(v.tabs, func(t Tab) bool { return t.ID == v.active })
}

func (v *View) Stats() []StatCard { return slices.Clone(v.stats) }
func (v *View) Form() FormState   { return v.form }
func (v *View) Input() string     { return v.input }

// SelectTab makes id active. Ids not in the local list are ignored.
func (v *View) SelectTab(id string) {
	if slices.ContainsFunc(v.tabs, func(t Tab) bool { return t.ID == id }) {
		v.active = id
	}
}

// SelectIndex selects the tab at position i, if there is one.
func (v *View) SelectIndex(i int) {
	if i < 0 || i >= len(v.tabs) {
		return
	}
	v.active = v.tabs[i].ID
}

// SelectRelative moves the selection by delta positions, wrapping around.
func (v *View) SelectRelative(delta int) {
	n := len(v.tabs)
	if n == 0 {
		return
	}
	idx := v.ActiveIndex()
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+delta)%n + n) % n
	}
	v.active = v.tabs[idx].ID
}

func (v *View) BeginAddTab() { v.setForm(FormOpen) }

// CancelAddTab closes the form. The typed text is kept for the next open.
func (v *View) CancelAddTab() { v.setForm(FormClosed) }

func (v *View) setForm(s FormState) {
	if v.form != s {
		v.log.Debug("add-tab form", "state", s)
	}
	v.form = s
}

// SetInput mirrors the add-tab input box.
func (v *View) SetInput(s string) { v.input = s }

// SubmitNewTab sends a create request for a tab titled title. A title that is
// blank after trimming is ignored and no request is made. The new tab only
// enters local state once the server has accepted it.
func (v *View) SubmitNewTab(title string) tea.Cmd {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	candidate := Tab{
		ID:      v.ids.NewID(),
		Title:   title,
		Content: ContentFor(title),
	}
	v.log.Debug("creating tab", "id", candidate.ID, "title", candidate.Title)
	ctx, remote := v.ctx, v.remote
	return func() tea.Msg {
		saved, err := remote.Create(ctx, candidate)
		return TabCreatedMsg{Candidate: candidate, Tab: saved, Err: err}
	}
}

// RemoveTab drops id from local state straight away and returns the delete
// request. The request is sent even when id is not in the list, and a failed
// delete is never rolled back.
func (v *View) RemoveTab(id string) tea.Cmd {
	v.tabs = slices.DeleteFunc(v.tabs, func(t Tab) bool { return t.ID == id })
	switch {
	case len(v.tabs) == 0:
		v.active = ""
	case v.active == id:
		v.active = v.tabs[0].ID
	}
	ctx, remote := v.ctx, v.remote
	return func() tea.Msg {
		return TabDeletedMsg{ID: id, Err: remote.Delete(ctx, id)}
	}
}

// ContentFor derives a new tab's body from its title.
func ContentFor(title string) string {
	return "Content for " + title
}
