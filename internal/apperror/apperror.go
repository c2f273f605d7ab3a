// Package apperror holds the error taxonomy shared by every store operation.
// Each error carries a Kind so the boundary can report it without string matching.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindFormat     Kind = "format"
	KindStorage    Kind = "storage"
	KindCancelled  Kind = "cancelled"
	KindInternal   Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a rejected input. Nothing was changed.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Format reports a malformed import document. Nothing was replaced.
func Format(format string, args ...any) *Error {
	return &Error{Kind: KindFormat, Message: fmt.Sprintf(format, args...)}
}

// Storage reports a disk failure. After a mutation the in-memory change
// remains applied; durability is unknown.
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

func Cancelled(message string) *Error {
	return &Error{Kind: KindCancelled, Message: message}
}

// KindOf returns the kind of the first *Error in the chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsValidation(err error) bool { return err != nil && KindOf(err) == KindValidation }
func IsFormat(err error) bool     { return err != nil && KindOf(err) == KindFormat }
func IsStorage(err error) bool    { return err != nil && KindOf(err) == KindStorage }
func IsCancelled(err error) bool  { return err != nil && KindOf(err) == KindCancelled }
