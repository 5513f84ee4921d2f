// Package events provides the event store client: the single source of
// truth for calendar state on the client side.
//
// The Client holds an in-memory cache of events mirroring the backend
// collection. List reads the cache; Refresh, Create, Update and Remove
// talk to the backend and keep the cache consistent with the server's
// responses. Every mutation notifies subscribers so derived views
// (calendar month decoration, day view) can recompute.
//
// Failure semantics follow the backend error taxonomy:
//
//   - TransportError leaves the cache in its last-known-good state and
//     the same call may simply be retried
//   - NotFoundError on update means the server dropped the event; the
//     caller should Refresh to reconcile
//   - Remove treats a server-side 404 as success, so deleting an
//     already-absent id is idempotent
package events
