package core

import "fmt"

// Kind classifies an operation failure so the HTTP layer can pick a status
// code without parsing messages.
type Kind int

const (
	// KindInvalidInput covers missing or malformed fields and business-rule
	// violations such as insufficient stock.
	KindInvalidInput Kind = iota

	// KindNotFound means no entity with the given id exists, or a referenced
	// parent entity is absent.
	KindNotFound

	// KindConflict means a unique field collides with an existing entity.
	KindConflict
)

// Error is the typed failure every operation returns. It always carries a
// human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Invalidf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}
