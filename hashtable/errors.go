// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

import "errors"

var (
	// ErrNotFound reports an absent key from Retrieve or Remove. It
	// is an ordinary outcome, not a fault, and callers are expected
	// to branch on it.
	ErrNotFound = errors.New("hashtable: not found")

	// ErrNoSpace reports that neither the free list nor the
	// remaining arena can hold the request. New also returns it when
	// the supplied buffer is smaller than MinBufferSize.
	ErrNoSpace = errors.New("hashtable: no space")

	// ErrExhausted reports cursor exhaustion from Next. It is the
	// same status as an absent key and compares equal to ErrNotFound.
	ErrExhausted = ErrNotFound

	// ErrModified reports that the table was mutated between Reset
	// and Next. The cursor holds direct chain references, so any
	// Insert or Remove invalidates an in-progress traversal; Next
	// detects this instead of walking retired records.
	ErrModified = errors.New("hashtable: table modified during iteration")
)

// ArgError reports a contract violation: a nil table, a zero-length key,
// an oversize length. The Reason strings are stable. ArgError is only
// produced while parameter validation is compiled in; under the
// hashtable_nocheck build tag the caller is responsible for upholding
// the preconditions.
type ArgError struct {
	Op     string
	Reason string
}

func (e *ArgError) Error() string {
	return "hashtable: " + e.Op + ": " + e.Reason
}

// lastError is process-wide and overwritten on every violation, matching
// the diagnostic accessor of the original C library so thin facade
// wrappers keep working. New code should inspect the returned *ArgError.
var lastError string

// LastError returns the diagnostic from the most recent operation that
// failed parameter validation.
func LastError() string {
	return lastError
}

func argError(op, reason string) error {
	e := &ArgError{Op: op, Reason: reason}
	lastError = e.Error()
	return e
}
