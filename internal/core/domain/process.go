package domain

// Command is a subprocess to run.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env holds extra KEY=VALUE entries appended to the inherited environment.
	Env []string
}

// ProcessResult is the outcome of a subprocess that ran to completion.
type ProcessResult struct {
	ExitCode int
	// Output is stdout and stderr interleaved as the process wrote them.
	Output string
}

// Success reports whether the process exited with code 0.
func (r ProcessResult) Success() bool {
	return r.ExitCode == 0
}
