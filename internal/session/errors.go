package session

import "errors"

var (
	// ErrInvalidName is returned when the account name is blank.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidPIN is returned when a new PIN is not exactly 4 digits.
	ErrInvalidPIN = errors.New("PIN must be 4 digits")
	// ErrIncorrectPIN is returned when a login PIN does not match.
	ErrIncorrectPIN = errors.New("incorrect PIN")
	// ErrNonPositiveAmount is returned for deposits or withdrawals of zero or less.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	// ErrWrongStep is returned when an operation is not valid in the current step.
	ErrWrongStep = errors.New("operation not available in current step")
	// ErrUnknownAction is returned for a menu action outside Actions.
	ErrUnknownAction = errors.New("unknown action")
)
