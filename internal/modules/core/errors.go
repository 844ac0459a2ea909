package core

import "fmt"

type Unit struct{}

// CommandError carries the HTTP status a handler outcome should map to,
// along with an optional payload for the response body. Payloads on 5xx
// errors are never written to the response, only logged.
type CommandError struct {
	Payload    interface{}
	StatusCode int
	Reason     *string
}

type CommandErrorOption func(*CommandError)

func WithReason(reason string) CommandErrorOption {
	return func(e *CommandError) {
		e.Reason = &reason
	}
}

func NewCommandError(statusCode int, payload interface{}, opts ...CommandErrorOption) CommandError {
	e := CommandError{
		StatusCode: statusCode,
		Payload:    payload,
	}

	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func (e CommandError) Error() string {
	reason := ""
	if e.Reason != nil {
		reason = *e.Reason
	}

	return fmt.Sprintf("status: %d reason: '%s' payload: %+v", e.StatusCode, reason, e.Payload)
}
