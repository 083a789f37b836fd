package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/barisgit/vitekit/internal/runner"
)

// Handler simulates one external command
type Handler func(cmd runner.Command) (runner.Result, error)

type rule struct {
	prefix  string
	handler Handler
}

// FakeRunner records every command and answers from registered handlers.
// Commands without a matching handler succeed with empty output.
type FakeRunner struct {
	mu    sync.Mutex
	calls []runner.Command
	rules []rule
}

// NewFakeRunner creates an empty fake
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// On registers fn for commands whose command line starts with prefix.
// Later registrations win over earlier ones.
func (f *FakeRunner) On(prefix string, fn Handler) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = append(f.rules, rule{prefix: prefix, handler: fn})
	return f
}

// Respond makes matching commands succeed with the given output
func (f *FakeRunner) Respond(prefix, output string) *FakeRunner {
	return f.On(prefix, func(runner.Command) (runner.Result, error) {
		return runner.Result{Output: output}, nil
	})
}

// Fail makes matching commands exit with code
func (f *FakeRunner) Fail(prefix string, code int) *FakeRunner {
	return f.On(prefix, func(cmd runner.Command) (runner.Result, error) {
		out := "simulated failure\n"
		return runner.Result{Output: out, ExitCode: code}, &runner.ExitError{Command: cmd, Code: code, Output: out}
	})
}

// Run implements runner.Runner
func (f *FakeRunner) Run(ctx context.Context, cmd runner.Command) (runner.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	var handler Handler
	line := cmd.String()
	for i := len(f.rules) - 1; i >= 0; i-- {
		if strings.HasPrefix(line, f.rules[i].prefix) {
			handler = f.rules[i].handler
			break
		}
	}
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return runner.Result{}, err
	}
	if handler == nil {
		return runner.Result{}, nil
	}
	return handler(cmd)
}

// Calls returns the recorded commands in execution order
func (f *FakeRunner) Calls() []runner.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]runner.Command, len(f.calls))
	copy(out, f.calls)
	return out
}

// CommandLines returns the recorded command lines in execution order
func (f *FakeRunner) CommandLines() []string {
	calls := f.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}

// Count returns how many recorded command lines start with prefix
func (f *FakeRunner) Count(prefix string) int {
	n := 0
	for _, line := range f.CommandLines() {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}
