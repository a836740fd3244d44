package errs

import "errors"

var (
	FieldsRequired  = errors.New("All fields (name, email, message) are required.")
	InvalidEmail    = errors.New("Please provide a valid email address.")
	NameTooShort    = errors.New("Name must be at least 2 characters long.")
	MessageTooShort = errors.New("Message must be at least 10 characters long.")
)

var (
	InvalidRequestBody = errors.New("Invalid request body.")
	SaveFailed         = errors.New("Failed to save your message. Please try again later.")
	FetchFailed        = errors.New("Failed to fetch submissions.")
	Unauthorized       = errors.New("Unauthorized.")
	Internal           = errors.New("Internal server error.")
)

// ValidationError marks a client input failure. Message is the sentinel's text.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func Invalid(err error) error {
	return &ValidationError{Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
