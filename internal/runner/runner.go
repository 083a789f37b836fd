// Package runner executes external commands one at a time, streaming their
// output to the terminal while also capturing it for error reports.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"
)

// Command describes one external process invocation
type Command struct {
	Name string
	Args []string
	Dir  string            // working directory, empty means current
	Env  map[string]string // extra environment variables (overlay)
	// Quiet captures output without echoing it to the terminal.
	Quiet bool
}

// String renders the command line for logs
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result holds the outcome of a finished process
type Result struct {
	Output   string
	ExitCode int
}

// ExitError is returned when a process ran but exited non-zero
type ExitError struct {
	Command Command
	Code    int
	Output  string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command '%s' exited with code %d", e.Command, e.Code)
}

// Tail returns the last n lines of captured output
func (e *ExitError) Tail(n int) string {
	lines := strings.Split(strings.TrimRight(e.Output, "\r\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// Runner is the interface for running external commands.
// Run blocks until the process exits.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ProcessRunner is the production Runner built on os/exec
type ProcessRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	// UsePTY runs children on a pseudo terminal so they keep coloured,
	// interactive-style output. Ignored where unsupported.
	UsePTY bool
}

// NewProcessRunner creates a runner wired to the process's standard streams
func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		UsePTY: ptySupported && isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// Run executes the command, streams and captures its output.
// A non-zero exit yields *ExitError; failures to start are returned as is.
func (r *ProcessRunner) Run(ctx context.Context, c Command) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	if len(c.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range c.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	var captured bytes.Buffer
	sink := io.Writer(&captured)
	if !c.Quiet && r.Stdout != nil {
		sink = io.MultiWriter(r.Stdout, &captured)
	}

	var err error
	if r.UsePTY && !c.Quiet {
		err = runPTY(cmd, r.Stdin, sink)
	} else {
		cmd.Stdin = r.Stdin
		cmd.Stdout = sink
		cmd.Stderr = sink
		err = cmd.Run()
	}

	result := Result{Output: captured.String()}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("command '%s' interrupted: %w", c, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, &ExitError{Command: c, Code: result.ExitCode, Output: result.Output}
		}
		return result, fmt.Errorf("failed to run '%s': %w", c, err)
	}

	return result, nil
}
