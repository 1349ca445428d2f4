// Package state provides the thread-safe snapshot container for the
// roverdeck dashboard.
//
// # Overview
//
// The Store holds exactly one Snapshot at a time. Applying a Patch is the
// only mutation primitive: it produces a brand-new snapshot merging the
// patched fields over the previous value, then replaces the slot wholesale.
// There is no history and no undo; the previous snapshot is discarded.
//
// # Merge Semantics
//
// Patch fields are pointers so that "absent" and "set to empty" stay
// distinguishable:
//
//	store.Apply(state.Patch{Active: &slug})
//	→ Active replaced, Images and Attributes carried over
//
//	store.Apply(state.Patch{})
//	→ snapshot unchanged
//
// Images and Attributes always travel together in the patches the fetch
// orchestrator builds, so the view never shows images from one rover next to
// another rover's metadata. The rover roster is fixed at construction and no
// patch can touch it.
//
// # Concurrency
//
// A readers-writer lock guards the slot: Apply takes the write lock,
// Snapshot the read lock. Slices are defensively copied in both directions,
// so a returned snapshot can never observe or cause a later mutation. In
// practice the dashboard's update loop is the only writer; the lock keeps
// the container safe regardless of who calls it.
package state
