package usecase

import "errors"

var (
	ErrInvalidInput     = errors.New("Invalid input")
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrProjectNotFound  = errors.New("Project not found")
	ErrInternal         = errors.New("Internal error")
)
