package domain

import "fmt"

// NotFoundError reports a document reference that could not be resolved
// to an existing file. It is surfaced to callers and never retried.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document not found: %s", e.Ref)
}

// ProviderError reports a failed embedding call. The store recovers from it
// locally with a fallback vector, so it never surfaces as an operation failure.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedding provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PersistenceError reports a failed artifact read or write. The store logs it
// and keeps serving from memory; the on-disk view catches up on the next flush.
type PersistenceError struct {
	Artifact string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Artifact, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
