package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports missing or unusable request fields. It is a
// client-side rejection, never a fault.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", strings.Join(e.Fields, ", "))
}

// SlotFullError is the business rejection for a slot at capacity. Not a
// fault; retrying the same slot will not help.
type SlotFullError struct {
	Date string
	Slot string
}

func (e *SlotFullError) Error() string {
	return fmt.Sprintf("slot %s on %s is fully booked", e.Slot, e.Date)
}

// StoreError wraps a read or append failure against the reservation table.
type StoreError struct {
	Op  string // "read" or "append"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("reservation store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
