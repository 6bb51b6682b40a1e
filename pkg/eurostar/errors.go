package eurostar

import (
	"errors"
	"fmt"
)

var ErrEmptyStationDirectory = errors.New("server returned an empty station name to station id mapping")

// ClientError is a 4xx response. It is not retried.
type ClientError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("Got %s response: %s", e.Status, e.Body)
}

// ServerError is a 5xx response, transient and eligible for retry
type ServerError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Got %s response: %s", e.Status, e.Body)
}

// MalformedResponseError is a response body that does not match the expected JSON
type MalformedResponseError struct {
	Err  error
	Body string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("Error while parsing JSON: %s", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// TransportError is a failure to talk to the API at all
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
