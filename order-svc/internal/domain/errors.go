package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrTransaction  = errors.New("transaction failure")
)

// Error reasons surfaced in the "error" field of API responses.
const (
	CodeInvalidInput        = "invalid_input"
	CodeUnavailableItem     = "unavailable_item"
	CodeCrossRestaurantItem = "cross_restaurant_item"
	CodeTerminalState       = "terminal_state"
	CodeInvalidTransition   = "invalid_transition"
	CodeDuplicatePhone      = "duplicate_phone"
	CodeReferenced          = "referenced"
	CodeDuplicateSubmission = "duplicate_submission"
	CodeTransactionFailure  = "transaction_failure"
)

type Error struct {
	Kind    error
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func InvalidInput(message string) *Error {
	return &Error{Kind: ErrInvalidInput, Code: CodeInvalidInput, Message: message}
}

// NotFound reports a missing entity, e.g. NotFound("customer").
func NotFound(entity string) *Error {
	return &Error{Kind: ErrNotFound, Code: entity + "_not_found", Message: entity + " not found"}
}

func InvalidState(code, message string) *Error {
	return &Error{Kind: ErrInvalidState, Code: code, Message: message}
}

func TransactionFailure(err error) *Error {
	return &Error{Kind: ErrTransaction, Code: CodeTransactionFailure, Message: "transaction failed", Err: err}
}

// AsTransactionFailure keeps typed errors as they are and wraps everything else
// as a TransactionFailure.
func AsTransactionFailure(err error) error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return err
	}
	return TransactionFailure(err)
}

func UnavailableItem(item *MenuItem) *Error {
	return InvalidState(CodeUnavailableItem, fmt.Sprintf("menu item %q is currently unavailable", item.Name))
}

func CrossRestaurantItem(item *MenuItem) *Error {
	return InvalidState(CodeCrossRestaurantItem, fmt.Sprintf("menu item %q does not belong to the selected restaurant", item.Name))
}
