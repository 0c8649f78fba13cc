package routes

// ValidationError marks a request the caller built wrongly; the error
// boundary renders it as HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
