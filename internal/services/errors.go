package services

// ValidationError reports rejected caller input. Handlers render it as an
// {"error": ...} field in an otherwise successful response body — clients
// inspect payload shape, not status codes, to detect validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
