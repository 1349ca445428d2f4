// Package ui implements the roverdeck terminal dashboard.
//
// # Architecture
//
// The dashboard follows the Elm architecture Bubble Tea provides: a Model
// value, an Update that consumes messages and returns the next model, and a
// View derived from model state. The Model is the single top-level
// controller: it exclusively owns the snapshot store and the single-flight
// guard, so no ambient globals participate in state changes.
//
// # Selection Flow
//
// Pressing enter on a rover that is not already active claims the guard and
// starts a fetch command. The command runs off the update loop and delivers
// a fetchDoneMsg; Update releases the guard, and on success applies one
// Patch carrying the active slug, the image list, and the attribute set
// together. A failed fetch records the error for the status line and leaves
// the previous snapshot untouched.
//
// Two interactions are deliberately silent no-ops: re-selecting the rover
// that is already active (no fetch is attempted), and selecting anything
// while a fetch is outstanding (the guard drops the press, it is not
// queued).
//
// # Rendering
//
// View composes pure render functions (nav list, attribute section,
// gallery, header, footer) that map a snapshot and styles to markup with
// no clock or hidden state. The same snapshot always renders to the same
// bytes; scroll position and spinner frames live in the model and are
// passed in explicitly.
package ui
