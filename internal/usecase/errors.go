package usecase

import "errors"

// DomainError is a business-rule rejection that maps to a 4xx response.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is an infrastructure failure that maps to a generic 500.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

var (
	ErrCaptchaRequired = &DomainError{Code: "CAPTCHA_REQUIRED", Message: "Captcha verification required"}
	ErrCaptchaFailed   = &DomainError{Code: "CAPTCHA_FAILED", Message: "Captcha verification failed"}
)
