package dashboard

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskdash/internal/ids"
)

var errNetwork = errors.New("dial tcp: connection refused")

type fakeRemote struct {
	mu        sync.Mutex
	list      []Tab
	listErr   error
	createErr error
	deleteErr error
	echo      func(Tab) Tab

	listCalls int
	created   []Tab
	deleted   []string
}

func (f *fakeRemote) List(ctx context.Context) ([]Tab, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Tab(nil), f.list...), nil
}

func (f *fakeRemote) Create(ctx context.Context, tab Tab) (Tab, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, tab)
	if f.createErr != nil {
		return Tab{}, f.createErr
	}
	if f.echo != nil {
		return f.echo(tab), nil
	}
	return tab, nil
}

func (f *fakeRemote) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeRemote) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls + len(f.created) + len(f.deleted)
}

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return "id-" + string(rune('0'+s.n))
}

func newView(t *testing.T, remote *fakeRemote) (*View, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(&buf)
	v := New(context.Background(), remote, &seqIDs{}, logger, []StatCard{{Name: "Tasks", Value: "56"}})
	return v, &buf
}

// run executes cmd synchronously and feeds its message back, the way the
// bubbletea runtime would.
func run(t *testing.T, v *View, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	require.True(t, v.Handle(msg), "unhandled %T", msg)
	return msg
}

func loaded(t *testing.T, tabs ...Tab) (*View, *fakeRemote, *bytes.Buffer) {
	t.Helper()
	remote := &fakeRemote{list: tabs}
	v, buf := newView(t, remote)
	run(t, v, v.Init())
	return v, remote, buf
}

var (
	tabA = Tab{ID: "a", Title: "A", Content: "Content for A"}
	tabB = Tab{ID: "b", Title: "B", Content: "Content for B"}
)

func TestInitialLoad(t *testing.T) {
	v, remote, _ := loaded(t, Tab{ID: "1", Title: "A", Content: "c"})

	require.Equal(t, 1, remote.listCalls)
	require.Equal(t, []Tab{{ID: "1", Title: "A", Content: "c"}}, v.Tabs())
	require.Equal(t, "1", v.ActiveID())
	active, ok := v.ActiveTab()
	require.True(t, ok)
	require.Equal(t, "c", active.Content)
}

func TestInitialLoadEmpty(t *testing.T) {
	v, _, _ := loaded(t)

	require.Empty(t, v.Tabs())
	require.Equal(t, "", v.ActiveID())
	_, ok := v.ActiveTab()
	require.False(t, ok)
}

func TestInitialLoadFailureIsLoggedOnly(t *testing.T) {
	remote := &fakeRemote{listErr: errNetwork}
	v, buf := newView(t, remote)
	run(t, v, v.Init())

	require.Empty(t, v.Tabs())
	require.Equal(t, "", v.ActiveID())
	require.Contains(t, buf.String(), "list tabs failed")
}

func TestAddTabAppendsAndKeepsActive(t *testing.T) {
	v, remote, _ := loaded(t, tabA)
	v.BeginAddTab()
	v.SetInput("B")

	msg := run(t, v, v.SubmitNewTab("B"))

	created := msg.(TabCreatedMsg)
	require.NoError(t, created.Err)
	require.Len(t, remote.created, 1)
	require.Equal(t, "B", remote.created[0].Title)
	require.Equal(t, "Content for B", remote.created[0].Content)
	require.NotEmpty(t, remote.created[0].ID)

	tabs := v.Tabs()
	require.Len(t, tabs, 2)
	require.Equal(t, tabA, tabs[0])
	require.Equal(t, remote.created[0], tabs[1])
	require.Equal(t, "a", v.ActiveID())
	require.Equal(t, FormClosed, v.Form())
	require.Equal(t, "", v.Input())
}

func TestAddTabToEmptyDashboardActivatesIt(t *testing.T) {
	v, _, _ := loaded(t)
	v.BeginAddTab()

	run(t, v, v.SubmitNewTab("First"))

	tabs := v.Tabs()
	require.Len(t, tabs, 1)
	require.Equal(t, tabs[0].ID, v.ActiveID())
}

func TestAddTabUsesCanonicalServerTab(t *testing.T) {
	v, remote, _ := loaded(t)
	remote.echo = func(in Tab) Tab {
		in.ID = "server-1"
		return in
	}

	run(t, v, v.SubmitNewTab("X"))

	require.Equal(t, "server-1", v.Tabs()[0].ID)
	require.Equal(t, "server-1", v.ActiveID())
}

func TestRejectBlankTitle(t *testing.T) {
	v, remote, _ := loaded(t, tabA)
	v.BeginAddTab()
	before := remote.calls()

	for _, title := range []string{"", "   ", "\t\n"} {
		require.Nil(t, v.SubmitNewTab(title))
	}

	require.Equal(t, before, remote.calls())
	require.Equal(t, []Tab{tabA}, v.Tabs())
	require.Equal(t, "a", v.ActiveID())
	require.Equal(t, FormOpen, v.Form())
}

func TestFailedCreateKeepsFormAndInput(t *testing.T) {
	v, remote, buf := loaded(t, tabA)
	remote.createErr = errNetwork
	v.BeginAddTab()
	v.SetInput("Reports")

	run(t, v, v.SubmitNewTab("Reports"))

	require.Equal(t, []Tab{tabA}, v.Tabs())
	require.Equal(t, FormOpen, v.Form())
	require.Equal(t, "Reports", v.Input())
	require.Contains(t, buf.String(), "create tab failed")
}

func TestCreateResultWithoutIDIsAFailure(t *testing.T) {
	remote := &fakeRemote{echo: func(Tab) Tab { return Tab{} }}
	v, buf := newView(t, remote)
	run(t, v, v.Init())
	v.BeginAddTab()
	v.SetInput("B")

	run(t, v, v.SubmitNewTab("B"))

	require.Empty(t, v.Tabs())
	require.Equal(t, "", v.ActiveID())
	require.Equal(t, FormOpen, v.Form())
	require.Equal(t, "B", v.Input())
	require.Contains(t, buf.String(), "create tab failed")
}

func TestListResultWithoutIDIsAFailure(t *testing.T) {
	v, remote, buf := loaded(t, tabA)
	remote.list = []Tab{tabB, {Title: "orphan"}}

	run(t, v, v.Init())

	require.Equal(t, []Tab{tabA}, v.Tabs())
	require.Equal(t, "a", v.ActiveID())
	require.Contains(t, buf.String(), "list tabs failed")
}

func TestFormChangesAreLoggedAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	v := New(context.Background(), &fakeRemote{}, &seqIDs{}, logger, nil)

	v.BeginAddTab()
	v.BeginAddTab()
	v.CancelAddTab()

	require.Equal(t, 1, strings.Count(buf.String(), "state=open"))
	require.Equal(t, 1, strings.Count(buf.String(), "state=closed"))
}

func TestNilLoggerDiscards(t *testing.T) {
	v := New(context.Background(), &fakeRemote{createErr: errNetwork}, nil, nil, nil)
	v.BeginAddTab()
	run(t, v, v.SubmitNewTab("B"))
	require.Equal(t, FormOpen, v.Form())
}

func TestDeleteActiveTab(t *testing.T) {
	v, remote, _ := loaded(t, tabA, tabB)
	require.Equal(t, "a", v.ActiveID())

	cmd := v.RemoveTab("a")

	// local state changes before the request completes
	require.Equal(t, []Tab{tabB}, v.Tabs())
	require.Equal(t, "b", v.ActiveID())
	run(t, v, cmd)
	require.Equal(t, []string{"a"}, remote.deleted)
}

func TestDeleteNonActiveTab(t *testing.T) {
	v, _, _ := loaded(t, tabA, tabB)

	run(t, v, v.RemoveTab("b"))

	require.Equal(t, []Tab{tabA}, v.Tabs())
	require.Equal(t, "a", v.ActiveID())
}

func TestDeleteLastTab(t *testing.T) {
	v, _, _ := loaded(t, tabA)

	run(t, v, v.RemoveTab("a"))

	require.Empty(t, v.Tabs())
	require.Equal(t, "", v.ActiveID())
}

func TestFailedDeleteIsNotRolledBack(t *testing.T) {
	v, remote, buf := loaded(t, tabA, tabB)
	remote.deleteErr = errNetwork

	run(t, v, v.RemoveTab("a"))

	require.Equal(t, []Tab{tabB}, v.Tabs())
	require.Contains(t, buf.String(), "delete tab failed")
}

func TestDeleteUnknownIDStillSendsRequest(t *testing.T) {
	v, remote, _ := loaded(t, tabA)

	run(t, v, v.RemoveTab("missing"))
	run(t, v, v.RemoveTab("missing"))

	require.Equal(t, []Tab{tabA}, v.Tabs())
	require.Equal(t, "a", v.ActiveID())
	require.Equal(t, []string{"missing", "missing"}, remote.deleted)
}

func TestSelectTabMakesNoRemoteCall(t *testing.T) {
	v, remote, _ := loaded(t, tabA, tabB)
	before := remote.calls()

	v.SelectTab("b")
	v.SelectTab("b")
	require.Equal(t, "b", v.ActiveID())
	v.SelectTab("nope")
	require.Equal(t, "b", v.ActiveID())
	v.SelectIndex(0)
	require.Equal(t, "a", v.ActiveID())
	v.SelectRelative(-1)
	require.Equal(t, "b", v.ActiveID())
	v.SelectRelative(1)
	require.Equal(t, "a", v.ActiveID())

	require.Equal(t, before, remote.calls())
}

func TestFormTransitions(t *testing.T) {
	v, _, _ := loaded(t)
	require.Equal(t, FormClosed, v.Form())
	v.BeginAddTab()
	require.Equal(t, FormOpen, v.Form())
	v.SetInput("draft")
	v.CancelAddTab()
	require.Equal(t, FormClosed, v.Form())
	require.Equal(t, "draft", v.Input())
}

func TestOverlappingResultsMergeInArrivalOrder(t *testing.T) {
	v, _, _ := loaded(t, tabA, tabB)

	create := v.SubmitNewTab("C")
	remove := v.RemoveTab("a")

	// the delete result arrives first, the slow create second
	run(t, v, remove)
	run(t, v, create)

	tabs := v.Tabs()
	require.Len(t, tabs, 2)
	require.Equal(t, "b", tabs[0].ID)
	require.Equal(t, "C", tabs[1].Title)
	require.Equal(t, "b", v.ActiveID())
}

func TestSubmitUsesGeneratorAtSubmitTime(t *testing.T) {
	remote := &fakeRemote{}
	clock := time.UnixMilli(1718000000000)
	v := New(context.Background(), remote, ids.Timestamp{Now: func() time.Time { return clock }}, nil, nil)

	cmd := v.SubmitNewTab("T")
	clock = clock.Add(time.Second)
	run(t, v, cmd)

	require.Equal(t, "1718000000000", remote.created[0].ID)
}

func TestStatsAreCopied(t *testing.T) {
	v, _, _ := loaded(t)
	stats := v.Stats()
	stats[0].Value = "changed"
	require.Equal(t, "56", v.Stats()[0].Value)
}

func TestHandleIgnoresForeignMessages(t *testing.T) {
	v, _, _ := loaded(t)
	require.False(t, v.Handle(tea.WindowSizeMsg{Width: 1}))
}
