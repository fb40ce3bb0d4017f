package cli

// Exit codes for the CLI.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ExitError wraps an error with an exit code so main can translate
// command failures into process status.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and error.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode extracts the exit code from an error. Plain errors map
// to ExitFailure, nil maps to ExitSuccess.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	return ExitFailure
}
