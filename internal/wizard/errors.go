package wizard

import (
	"errors"

	"photoprint-backend/internal/photo"
)

// Kind classifies a rejected wizard operation.
type Kind string

const (
	KindMissingField     Kind = "missing-required-field"
	KindInvalidFormat    Kind = "invalid-format"
	KindUnsupportedFile  Kind = "unsupported-file-type"
	KindFileTooLarge     Kind = "file-too-large"
	KindStepPrecondition Kind = "step-precondition-unmet"
)

// ValidationError is a user-correctable failure. Message is shown verbatim.
type ValidationError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

var (
	ErrPhotoRequired = &ValidationError{
		Kind:    KindStepPrecondition,
		Message: "Please upload a photo first",
	}
	ErrMissingRequired = &ValidationError{
		Kind:    KindMissingField,
		Message: "Please fill in all required fields (Name, Grade & Section, Phone)",
	}
	ErrInvalidPhone = &ValidationError{
		Kind:    KindInvalidFormat,
		Message: "Please enter a valid Philippine phone number (09XXXXXXXXX)",
	}
	ErrUnknownSize = &ValidationError{
		Kind:    KindInvalidFormat,
		Message: "Please choose a print size (4R, 5R or 8R)",
	}
	ErrUnknownStep = &ValidationError{
		Kind:    KindInvalidFormat,
		Message: "That step does not exist",
	}
	ErrUnknownTemplate = &ValidationError{
		Kind:    KindInvalidFormat,
		Message: "That template is not available",
	}
)

// AsValidation extracts a ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, photo.ErrUnsupportedType):
		return &ValidationError{Kind: KindUnsupportedFile, Message: photo.UserMessage(err), Err: err}
	case errors.Is(err, photo.ErrTooLarge):
		return &ValidationError{Kind: KindFileTooLarge, Message: photo.UserMessage(err), Err: err}
	default:
		return err
	}
}
