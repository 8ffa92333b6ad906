package feedback

import "errors"

var (
	ErrCardNotFound  = errors.New("feedback card not found")
	ErrEntryNotFound = errors.New("feedback entry not found")
)
