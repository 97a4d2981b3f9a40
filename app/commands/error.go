package commands

import "log"

// CommandError contains user-facing information about an error that occurred processing a command
type CommandError struct {
	msg string
}

func (cErr *CommandError) Error() string {
	return cErr.msg
}

// NewError creates a CommandError with the given user-facing message
func NewError(msg string) *CommandError {
	return &CommandError{msg: msg}
}

// CreateCommandError wraps an underlying error with a user-facing message, or returns nil if there was no error
// The underlying error is logged, not shown to the user
func CreateCommandError(msg string, err error) *CommandError {
	if err == nil {
		return nil
	}
	log.Printf("%s: %s", msg, err)

	return &CommandError{msg: msg}
}
