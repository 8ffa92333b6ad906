package recruiting

import "errors"

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrUnknownStage      = errors.New("unknown pipeline stage")
)
