// Package form implements the event form controller, a small state
// machine over the event store: Idle, Editing (create or edit mode) and
// Submitting.
//
// Edit mode populates its fields from the canonical datetime's textual
// fields, so opening and re-saving an event without changes stores the
// identical value back. Submits are single-flight per controller: a
// second submit while one is outstanding is suppressed, never queued.
// When a day view is active, new events target that day rather than the
// month-grid selection.
package form
