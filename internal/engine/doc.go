// Package engine keeps a set of live panes in sync: every pane shows the
// same sequence of lexical tokens rendered in its own bound language.
//
// Allowed here:
// - pane registry and focus policy
// - exact cross-language token mapping and bracket placeholder policy
// - the propagation pass and its reentrancy guard
//
// Not allowed here:
// - rendering, key handling, or any terminal concern
// - file or database access
package engine
