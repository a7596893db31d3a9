// Package dashboard holds the dashboard view controller: the tab collection,
// the active selection, the add-tab form and the static stat cards.
//
// Remote calls are returned as tea.Cmd values. The bubbletea runtime runs them
// off the event loop and hands their result messages back to Handle, which is
// the only place remote results are merged into local state. Overlapping
// requests are neither cancelled, de-duplicated nor ordered; results are
// merged in whatever order they arrive.
package dashboard
