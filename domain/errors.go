package domain

import (
	"errors"
	"fmt"
)

// Client-visible failures. Controllers map these to 4xx responses; anything
// else coming out of a service is treated as a server fault.
var (
	ErrRecordNotFound  = errors.New("sleep record not found")
	ErrAccountNotFound = errors.New("account record not found")
	ErrNoteNotFound    = errors.New("note not found")
)

// CapacityExceededError rejects a submission that would push an account past
// 24 recorded hours for one date. AvailableHours is the remaining budget at
// the time the check ran.
type CapacityExceededError struct {
	Date           string
	AvailableHours int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("Total Available Hours left for date %s are %d", e.Date, e.AvailableHours)
}

// StorageError hides backing-store failures from clients; the wrapped cause
// is for server-side logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
