package addressbook

import "errors"

// Closed set of failures the book and its records can report.
// Callers discriminate with errors.Is; messages are not part of the contract.
var (
	ErrInvalidPhoneNumber = errors.New("phone number must have 10 digits")
	ErrInvalidDate        = errors.New("invalid date, expected DD.MM.YYYY")
	ErrContactNotFound    = errors.New("contact not found")
	ErrInvalidArguments   = errors.New("invalid arguments")
)
