package cli

import "fmt"

// ExitCodeStepFailed is the exit code apply --strict uses when a step fails.
const ExitCodeStepFailed = 2

// ExitError carries a process exit code for failures that are not command
// errors in themselves, such as a strict apply with failed steps.
type ExitError struct {
	ExitCode int
	Reason   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s (exit code %d)", e.Reason, e.ExitCode)
}
