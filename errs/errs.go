package errs

import "errors"

var ErrUnexpectedSportsDBStatusCode = errors.New("unexpected status code received from sportsdb")

const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeUnprocessableContent = "UNPROCESSABLE_CONTENT"
	CodeResourceNotFound     = "RESOURCE_NOT_FOUND"
	CodeInternalServerError  = "INTERNAL_SERVER_ERROR"
	CodeTimeout              = "TIMEOUT"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeFeatureDisabled      = "FEATURE_DISABLED"
)

type ResourceNotFoundError struct {
	err error
}

func NewResourceNotFoundError(err error) ResourceNotFoundError {
	return ResourceNotFoundError{err: err}
}

func (e ResourceNotFoundError) Error() string {
	return e.err.Error()
}

func (e ResourceNotFoundError) Unwrap() error {
	return e.err
}

type UnprocessableContentError struct {
	err error
}

func NewUnprocessableContentError(err error) UnprocessableContentError {
	return UnprocessableContentError{err: err}
}

func (e UnprocessableContentError) Error() string {
	return e.err.Error()
}

func (e UnprocessableContentError) Unwrap() error {
	return e.err
}
