// Package apperr defines the error taxonomy shared by the store, the
// orchestrator and the collaborator adapters. Every error carries its kind
// explicitly; fault categories are derived from the kind, never inferred from
// message text.
package apperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindAuthorization
	KindConflict
	KindNotFound
	KindState
	KindInternal
)

// Fault categories exposed at the RPC boundary.
const (
	CategoryClient int32 = 1
	CategoryServer int32 = 2
)

type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, logged but never shown to callers
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Category() int32 {
	if e.Kind == KindInternal {
		return CategoryServer
	}
	return CategoryClient
}

func Validation(msg string) *Error    { return &Error{Kind: KindValidation, Message: msg} }
func Authorization(msg string) *Error { return &Error{Kind: KindAuthorization, Message: msg} }
func Conflict(msg string) *Error      { return &Error{Kind: KindConflict, Message: msg} }
func NotFound(msg string) *Error      { return &Error{Kind: KindNotFound, Message: msg} }
func State(msg string) *Error         { return &Error{Kind: KindState, Message: msg} }

// Internal hides the cause behind a stable message; err is kept for logs.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "erro interno no servidor", Err: err}
}

// From normalizes err into the taxonomy. Anything the lower layers did not
// classify is a server fault.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

func KindOf(err error) Kind { return From(err).Kind }

func CategoryOf(err error) int32 { return From(err).Category() }
