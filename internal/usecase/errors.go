package usecase

import "errors"

var (
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("email already registered")
	ErrDuplicateFile       = errors.New("file already processed")
	ErrDescriptionTooShort = errors.New("job description too short")
)

// ValidationError reports a request that failed input checks.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
