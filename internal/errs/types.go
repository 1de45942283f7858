package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type AccountNotFoundError struct {
	ErrorMessage
}

type TransactionNotFoundError struct {
	ErrorMessage
}

type NotFoundError struct {
	ErrorMessage
}

type AlreadyExistsError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// InvalidStateError signals an operation applied to an entity in the wrong
// lifecycle state, e.g. settling a loan that is not pending.
type InvalidStateError struct {
	ErrorMessage
}

// DatabaseError wraps a failed Firestore call.
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// PartialFailureError is raised when the second write of a multi-step
// mutation fails after the first succeeded, leaving the transaction record
// and the account balance out of step. Step names which write failed so
// the caller can reconcile or retry.
type PartialFailureError struct {
	ErrorMessage
	Step string
	Err  error
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

func NewAccountNotFoundError(name string) *AccountNotFoundError {
	return &AccountNotFoundError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("account %q not found", name)},
	}
}

func NewTransactionNotFoundError(id string) *TransactionNotFoundError {
	return &TransactionNotFoundError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("transaction %q not found", id)},
	}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInvalidStateError(message string) *InvalidStateError {
	return &InvalidStateError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewPartialFailureError(step, message string, err error) *PartialFailureError {
	return &PartialFailureError{
		ErrorMessage: ErrorMessage{Message: message},
		Step:         step,
		Err:          err,
	}
}
