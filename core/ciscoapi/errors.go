package ciscoapi

import "errors"

// CredentialsError reports rejected or missing client credentials.
type CredentialsError struct {
	Detail string
	Err    error
}

func (e *CredentialsError) Error() string { return e.Detail }
func (e *CredentialsError) Unwrap() error { return e.Err }

// UnreachableError reports that the vendor endpoints could not be contacted.
type UnreachableError struct {
	Detail string
	Err    error
}

func (e *UnreachableError) Error() string { return e.Detail }
func (e *UnreachableError) Unwrap() error { return e.Err }

// CallFailedError reports a request that reached the vendor but did not
// produce a usable response.
type CallFailedError struct {
	Detail string
	Err    error
}

func (e *CallFailedError) Error() string { return e.Detail }
func (e *CallFailedError) Unwrap() error { return e.Err }

// NewCallFailed returns a CallFailedError with the given detail.
func NewCallFailed(detail string, err error) *CallFailedError {
	return &CallFailedError{Detail: detail, Err: err}
}

// IsCredentials reports whether err is a CredentialsError.
func IsCredentials(err error) bool {
	var target *CredentialsError
	return errors.As(err, &target)
}

// IsUnreachable reports whether err is an UnreachableError.
func IsUnreachable(err error) bool {
	var target *UnreachableError
	return errors.As(err, &target)
}

// IsCallFailed reports whether err is a CallFailedError.
func IsCallFailed(err error) bool {
	var target *CallFailedError
	return errors.As(err, &target)
}
