package services

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrLogNotFound       = errors.New("log not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)
