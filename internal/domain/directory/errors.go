package directory

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrEmployeeIDTaken   = errors.New("employee id already in use")
	ErrUnknownRole       = errors.New("role does not exist")
	ErrUnknownDepartment = errors.New("department does not exist")
)
