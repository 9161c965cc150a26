package domain

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrTaskValidation = errors.New("task validation failed")
)
