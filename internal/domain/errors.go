package domain

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotActive          = errors.New("user is not active")
	ErrInvalidActivationToken = errors.New("invalid activation token")
	ErrUserNotFound           = errors.New("user not found")
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrNotOwner               = errors.New("not the resource owner")
)

// ErrorKind classifies failures so the HTTP layer can translate every error
// through a single place.
type ErrorKind int

const (
	KindServer ErrorKind = iota
	KindValidation
	KindConflict
	KindAuth
	KindForbidden
	KindNotFound
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func WrapError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func Validation(msg string) *Error { return NewError(KindValidation, msg) }
func Conflict(msg string) *Error   { return NewError(KindConflict, msg) }
func Auth(msg string) *Error       { return NewError(KindAuth, msg) }
func Forbidden(msg string) *Error  { return NewError(KindForbidden, msg) }
func NotFound(msg string) *Error   { return NewError(KindNotFound, msg) }

// KindOf reports the taxonomy kind for err. Anything unrecognized is a server
// error so internals never leak into responses.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return KindAuth
	case errors.Is(err, ErrNotOwner):
		return KindForbidden
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrQuoteNotFound):
		return KindNotFound
	case errors.Is(err, ErrUserNotActive), errors.Is(err, ErrInvalidActivationToken):
		return KindValidation
	}
	return KindServer
}
