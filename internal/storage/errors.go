package storage

import "fmt"

// DecodeError reports a stored value that is not a valid JSON array of
// the collection's entity type. Callers recover by calling Reset.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("storage: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WriteFailure reports a rejected write-back of a collection. The
// previously persisted value is left unchanged.
type WriteFailure struct {
	Key string
	Err error
}

func (e *WriteFailure) Error() string {
	return fmt.Sprintf("storage: write %q: %v", e.Key, e.Err)
}

func (e *WriteFailure) Unwrap() error { return e.Err }
