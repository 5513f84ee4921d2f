package backend

import "fmt"

// ValidationError indicates input that the collaborator (or a local
// validation step) rejected. It is reported inline and never retried
// automatically.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Detail)
}

// TransportError indicates that the collaborator was unreachable or
// answered with an unexpected status. The caller's last-known-good state
// is left intact; the same operation may be retried manually.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates that the target of an update or delete no
// longer exists server-side. Callers should refresh their cache to
// reconcile with server truth.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}
