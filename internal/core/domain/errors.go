package domain

import "errors"

// Error kinds. Callers classify failures with errors.Is against these.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrNoActiveCampaigns = &Error{Kind: ErrNotFound, Msg: "no active campaigns found"}
	ErrNoProductFound    = &Error{Kind: ErrNotFound, Msg: "no product found for the specified criteria"}
	ErrEmptyProductIDs   = &Error{Kind: ErrInvalidInput, Msg: "Product IDs cannot be null or empty"}
)

// Error carries a client-facing message together with the kind it belongs
// to. The message is safe to return to API callers.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}
