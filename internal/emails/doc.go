// Package emails provides the classified email collection and its
// derived view: a two-stage pure pipeline of Filter then Sort,
// recomputed whenever the collection or the criteria change.
//
// Records come from the backend's AI pipeline fully classified; this
// package never judges content. Filtering is a conjunction of the
// non-empty criteria, sorting is stable, and Toggle implements the
// click-a-column-header semantics: same key flips direction, new key
// starts from its default (newest-first for dates, ascending otherwise).
package emails
