package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrEmptyInput     = errors.New("input must not be empty")
	ErrNilAdapter     = errors.New("server adapter is required")
)
