// Package server defines listener errors.
package server

import "fmt"

// BindError reports that the listening socket could not be created:
// port in use, permission denied or an invalid address.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
