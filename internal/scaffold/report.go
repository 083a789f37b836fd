package scaffold

import "fmt"

// Report summarises a finished scaffolding run
type Report struct {
	Root       string   // absolute project root
	Files      []string // artifacts written, relative to Root
	Patched    []string // files changed by structural patches
	Warnings   []string
	LintPassed bool
	Committed  bool
}

func (r *Report) warn(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	return msg
}

// StageError wraps a fatal failure with the stage it happened in
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
