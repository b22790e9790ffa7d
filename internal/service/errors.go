package service

import "errors"

var (
	ErrCartNotFound = errors.New("cart not found")

	ErrInvalidBill = errors.New("invalid bill submission")
	ErrEmptyBill   = errors.New("bill has no service items")

	// Commit steps. A *CommitError names the step that failed.
	ErrOrderInsertFailed       = errors.New("error inserting order")
	ErrOrderInsertEmpty        = errors.New("no data returned from order insertion")
	ErrOrderDetailInsertFailed = errors.New("error inserting order details")
)

// CommitError reports the commit step that failed and the store error behind it.
type CommitError struct {
	Step error
	Err  error
}

func (e *CommitError) Error() string {
	if e.Err == nil {
		return e.Step.Error()
	}
	return e.Step.Error() + ": " + e.Err.Error()
}

func (e *CommitError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Step}
	}
	return []error{e.Step, e.Err}
}

// Cause is the store message passed through to clients.
func (e *CommitError) Cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
