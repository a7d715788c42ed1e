package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound    *notFoundError
	ErrInvalidAction     = errors.New("invalid action message")
	ErrRetriesExhausted  = errors.New("retries exhausted")
	ErrAlreadyExists     = errors.New("target already exists on ad platform")
	ErrInvalidTarget     = errors.New("target must be a valid IP or CIDR")
	ErrChallengeRequired = errors.New("proof of work challenge required")
)

type notFoundError struct {
	EntityType string
	Key        string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with key '%s' not found", e.EntityType, e.Key)
}

func NewNotFoundError(entityType string, key string) error {
	return &notFoundError{
		EntityType: entityType,
		Key:        key,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}
