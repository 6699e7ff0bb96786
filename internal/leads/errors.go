package leads

import "errors"

var (
	// ErrLeadNotFound is returned when a lead is not found
	ErrLeadNotFound = errors.New("lead not found")
)
