package httperr

import "errors"

// Kind classifies a business error so the HTTP layer can pick a status code.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindNotFound
	KindConflict
	KindInvalidReference
	KindValidation
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidReference:
		return "invalid_reference"
	case KindValidation:
		return "validation"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
}

func (e BusinessError) Error() string {
	return e.Code
}

// Is matches on kind and code, so sentinels still compare equal after
// field details were attached.
func (e BusinessError) Is(target error) bool {
	t, ok := target.(BusinessError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// KindOf returns KindUnknown for errors that are not business errors.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

func Unauthenticated(code, message string) BusinessError {
	return BusinessError{Kind: KindUnauthenticated, Code: code, Message: message}
}

func NotFoundErr(code, message string) BusinessError {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) BusinessError {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func InvalidReference(code, message string) BusinessError {
	return BusinessError{Kind: KindInvalidReference, Code: code, Message: message}
}

func Unavailable(code, message string) BusinessError {
	return BusinessError{Kind: KindUnavailable, Code: code, Message: message}
}

// Validation builds a validation error; fields maps a field name to its
// problem and may be nil.
func Validation(code, message string, fields map[string]string) BusinessError {
	return BusinessError{Kind: KindValidation, Code: code, Message: message, Fields: fields}
}

// FieldErrors collects per-field problems while validating an input.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, problem string) {
	if _, exists := f[field]; !exists {
		f[field] = problem
	}
}

// Err returns nil when nothing was collected.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return Validation("validation_failed", "Dados inválidos.", f)
}
