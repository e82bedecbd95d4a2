package cli

import (
	"errors"
	"fmt"
)

// Process exit codes. Anything that reached the network or a signer and failed exits 1;
// input the command could reject before doing any work exits 2.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // rpc, keypair, simulation or transaction failure
	ExitCommandError = 2 // flags, config file, environment or schedule rejected up front
)

// ExitError carries the exit code a failed command should end the process with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError fails with code and a plain message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError fails with code, keeping err for errors.Is checks.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// usageError rejects a command line before any RPC call is made.
func usageError(format string, args ...any) *ExitError {
	return NewExitError(ExitCommandError, fmt.Sprintf(format, args...))
}

// GetExitCode maps a command error to its exit code. Errors without an ExitError in
// their chain come from the ledger or a signer and exit with ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
