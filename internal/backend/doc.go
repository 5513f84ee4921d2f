// Package backend implements the JSON client for the scheduling backend
// and defines the error taxonomy the rest of the engine recovers by.
//
// The collaborator contract:
//
//	GET    /events       list events
//	POST   /events       create an event
//	PUT    /events/{id}  update an event
//	DELETE /events/{id}  delete an event
//	GET    /emails       list classified emails
//
// Responses map onto three recoverable error kinds: ValidationError
// (rejected input, surfaced inline), TransportError (backend unreachable
// or unexpected status, retry manually) and NotFoundError (target gone
// server-side, refresh to reconcile). No failure is fatal.
package backend
