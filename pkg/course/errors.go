package course

// InvalidRequestError marks failures caused by the content of the
// client request (duplicate session identity, malformed fields, broken
// question payloads). The underlying cause message is preserved so it
// can be shown to the caller.
type InvalidRequestError struct {
	Cause error
}

func (e *InvalidRequestError) Error() string {
	return e.Cause.Error()
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Cause
}

func newInvalidRequestError(cause error) error {
	return &InvalidRequestError{Cause: cause}
}
