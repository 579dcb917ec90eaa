package models

// Typed errors for the workflow engine. The HTTP helper maps each type to a
// status code, so services never deal with HTTP directly.

type ErrorBadRequest struct{ Message string }

func (e ErrorBadRequest) Error() string { return e.Message }

type ErrorUnauthorized struct{ Message string }

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct{ Message string }

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct{ Message string }

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct{ Message string }

func (e ErrorConflict) Error() string { return e.Message }

type ErrorTooManyRequests struct {
	Message string
	// Seconds until the block elapses.
	RetryAfter int
}

func (e ErrorTooManyRequests) Error() string { return e.Message }

type ErrorInternalServer struct{ Message string }

func (e ErrorInternalServer) Error() string { return e.Message }
