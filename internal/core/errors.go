// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package core

import "errors"

// ErrorKind identifies a specific kind of error returned by this package and
// its callers. It satisfies the error interface so it can be used directly or
// matched against with errors.Is.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

const (
	// ErrRandomSource is returned when the configured entropy source fails to
	// supply bytes. This is the Go analogue of spec's AllocationFailure: Go
	// has no heap-allocation failure mode a caller can observe, but an
	// exhausted or broken crypto/rand reader is the equivalent "a required
	// resource could not be obtained" failure on this platform.
	ErrRandomSource = ErrorKind("ErrRandomSource")

	// ErrArithmetic is returned when the curve dependency refuses an
	// operation it is only expected to refuse on a degenerate input, such as
	// scalar-multiplying by zero and landing on the point at infinity.
	ErrArithmetic = ErrorKind("ErrArithmetic")

	// ErrDegenerateHash is returned when a hash-to-scalar derivation
	// produces zero or a value at or above the group order. Signers treat
	// this as a hard error; verifiers treat it as an ordinary invalid
	// signature (see VerifyRS).
	ErrDegenerateHash = ErrorKind("ErrDegenerateHash")

	// ErrRecoveryInfeasible is returned by committed-R recovery when both
	// signatures hash to the same challenge, leaving nothing to divide by.
	ErrRecoveryInfeasible = ErrorKind("ErrRecoveryInfeasible")
)

// Error identifies an error related to the schnorr/committed-R/musig
// construction and carries both a machine-checkable Err kind and a
// human-readable Description.
type Error struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is implements the interface to work with the standard library's
// errors.Is.
func (e Error) Is(target error) bool {
	var kind ErrorKind
	if errors.As(target, &kind) {
		return e.Err == kind
	}
	var err Error
	if errors.As(target, &err) {
		return e.Err == err.Err
	}
	return false
}

// NewError creates an Error given a kind and a description.
func NewError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
