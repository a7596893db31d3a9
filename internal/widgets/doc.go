// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, cards, meters)
//
// Not allowed here:
// - key handling, dashboard state, remote calls
package widgets
