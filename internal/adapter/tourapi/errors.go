package tourapi

import "fmt"

// TransportError covers everything that kept a usable response from arriving:
// network failures, timeouts, non-2xx statuses and upstream result codes
// other than success. Calls are never retried.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tour api %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means the response arrived but its body was not the expected
// JSON envelope.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tour api %s: decode response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
