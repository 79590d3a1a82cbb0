package project

import (
	"errors"
	"fmt"
)

// Precondition failures.
var (
	ErrPathNotEmpty      = errors.New("specified path is not empty")
	ErrPathDoesNotExist  = errors.New("specified path does not exist")
	ErrPathNotADirectory = errors.New("specified path is not a directory")
	ErrCannotDeriveName  = errors.New("failed to get directory file name")
)

// PreconditionError reports why a target path cannot hold a new project.
type PreconditionError struct {
	Path string
	Err  error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// MaterializeError names the materialization step that failed.
type MaterializeError struct {
	Step string
	Err  error
}

func (e *MaterializeError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Step, e.Err)
}

func (e *MaterializeError) Unwrap() error { return e.Err }
