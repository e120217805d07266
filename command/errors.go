package command

import "errors"

// Errors reported to the operator. Engine errors are passed through unwrapped.
var (
	ErrSyntax           = errors.New("square brackets are just for documentation purposes - you don't have to write them, e.g.: reset animals=100")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrArity            = errors.New("wrong number of parameters")
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrInvalidValue     = errors.New("invalid value")
)

// arityError carries a command-specific message and matches ErrArity.
type arityError string

func (e arityError) Error() string { return string(e) }

func (e arityError) Is(target error) bool { return target == ErrArity }

const (
	errNoParameters       = arityError("this command accepts no parameters")
	errAtMostOneParameter = arityError("this command accepts at most one parameter")
)
