// Package tui hosts the dashboard in a bubbletea program: it maps keys onto
// dashboard operations, hands remote results back to the dashboard and draws
// the screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskdash/internal/dashboard"
	"github.com/jask/jaskdash/internal/widgets"
)

// Options are the presentation settings.
type Options struct {
	Title    string
	Subtitle string
	APIBase  string
}

// App is the bubbletea model.
type App struct {
	dash     *dashboard.View
	keys     *KeyRegistry
	opts     Options
	input    textinput.Model
	jump     textinput.Model
	jumping  bool
	width    int
	height   int
	quitting bool
}

func New(dash *dashboard.View, keys *KeyRegistry, opts Options) *App {
	if keys == nil {
		keys = NewKeyRegistry(DefaultBindings())
	}
	if opts.Title == "" {
		opts.Title = "Dashboard"
	}

	in := textinput.New()
	in.Placeholder = "Tab title..."
	in.Prompt = "+ "
	in.CharLimit = 120
	in.Width = 24

	jump := textinput.New()
	jump.Placeholder = "jump to tab..."
	jump.Prompt = "/ "
	jump.CharLimit = 120
	jump.Width = 24

	return &App{
		dash:   dash,
		keys:   keys,
		opts:   opts,
		input:  in,
		jump:   jump,
		width:  100,
		height: 32,
	}
}

// Init issues the one-time tab list request.
func (a *App) Init() tea.Cmd {
	return a.dash.Init()
}

func (a *App) scope() string {
	switch {
	case a.jumping:
		return scopeJump
	case a.dash.Form() == dashboard.FormOpen:
		return scopeForm
	default:
		return scopeDashboard
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	if a.dash.Handle(msg) {
		a.syncForm()
		return a, nil
	}
	var cmd tea.Cmd
	switch a.scope() {
	case scopeForm:
		a.input, cmd = a.input.Update(msg)
	case scopeJump:
		a.jump, cmd = a.jump.Update(msg)
	}
	return a, cmd
}

// syncForm mirrors the dashboard form state into the input box after a
// create result: closed and cleared on success, untouched on failure.
func (a *App) syncForm() {
	if a.dash.Form() == dashboard.FormClosed && a.input.Focused() {
		a.input.Blur()
	}
	if a.input.Value() != a.dash.Input() {
		a.input.SetValue(a.dash.Input())
	}
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := a.scope()
	if a.keys.IsAction(m, actionQuit, scope) {
		a.quitting = true
		return a, tea.Quit
	}
	switch scope {
	case scopeForm:
		return a.handleFormKey(m)
	case scopeJump:
		return a.handleJumpKey(m)
	}

	switch {
	case a.keys.IsAction(m, actionAdd, scope):
		a.dash.BeginAddTab()
		a.input.SetValue(a.dash.Input())
		a.input.CursorEnd()
		return a, a.input.Focus()
	case a.keys.IsAction(m, actionNext, scope):
		a.dash.SelectRelative(1)
	case a.keys.IsAction(m, actionPrev, scope):
		a.dash.SelectRelative(-1)
	case a.keys.IsAction(m, actionPick, scope):
		a.dash.SelectIndex(int(m.String()[0] - '1'))
	case a.keys.IsAction(m, actionRemove, scope):
		if id := a.dash.ActiveID(); id != "" {
			return a, a.dash.RemoveTab(id)
		}
	case a.keys.IsAction(m, actionRemoveAt, scope):
		// alt+N removes the Nth tab and leaves the selection alone
		s := m.String()
		i := int(s[len(s)-1] - '1')
		if tabs := a.dash.Tabs(); i >= 0 && i < len(tabs) {
			return a, a.dash.RemoveTab(tabs[i].ID)
		}
	case a.keys.IsAction(m, actionJump, scope):
		a.jumping = true
		a.jump.Reset()
		return a, a.jump.Focus()
	}
	return a, nil
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.IsAction(m, actionSubmit, scopeForm):
		title := a.input.Value()
		a.dash.SetInput(title)
		return a, a.dash.SubmitNewTab(title)
	case a.keys.IsAction(m, actionCancel, scopeForm):
		a.dash.CancelAddTab()
		a.input.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	a.dash.SetInput(a.input.Value())
	return a, cmd
}

func (a *App) handleJumpKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.IsAction(m, actionSubmit, scopeJump):
		a.dash.JumpToTitle(a.jump.Value())
		a.closeJump()
		return a, nil
	case a.keys.IsAction(m, actionCancel, scopeJump):
		a.closeJump()
		return a, nil
	}
	var cmd tea.Cmd
	a.jump, cmd = a.jump.Update(m)
	return a, cmd
}

func (a *App) closeJump() {
	a.jumping = false
	a.jump.Blur()
	a.jump.Reset()
}

func (a *App) status() string {
	n := len(a.dash.Tabs())
	noun := "tabs"
	if n == 1 {
		noun = "tab"
	}
	parts := []string{fmt.Sprintf("%d %s", n, noun)}
	if t, ok := a.dash.ActiveTab(); ok {
		parts = append(parts, "viewing "+t.Title)
	}
	if a.opts.APIBase != "" {
		parts = append(parts, a.opts.APIBase)
	}
	return strings.Join(parts, " · ")
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	width, height := max(1, a.width), max(1, a.height)
	header := renderHeader(a.opts.Title, a.opts.Subtitle, width)
	status := renderStatusBar(a.status(), width)
	footer := renderFooter(a.keys, a.scope(), width)

	trailing := emptyStyle.Render("[+]")
	switch a.scope() {
	case scopeForm:
		trailing = a.input.View()
	case scopeJump:
		trailing = a.jump.View()
	}
	view := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(header),
			statsRow(a.dash.Stats()),
			tabsPanel(a.dash.Tabs(), a.dash.ActiveID(), trailing),
			bottomRow(),
			widgets.Text(status),
			widgets.Text(footer),
		},
		Heights: []int{lipgloss.Height(header), statsHeight, 0, bottomHeight, 1, 1},
	}.Render(width, height)
	view = fitHeight(view, height)
	return appStyle.Width(width).MaxWidth(width).Render(view)
}
