package domain

import (
	"errors"
	"fmt"
)

// StoreError wraps a failed store call together with the provider's own message
type StoreError struct {
	Op      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ProviderMessage returns the message reported by the storage provider,
// falling back to the full error text.
func ProviderMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *StoreError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return err.Error()
}
