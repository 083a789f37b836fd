//go:build unix

package runner

import (
	"io"
	"os/exec"

	"github.com/creack/pty"
)

const ptySupported = true

// runPTY starts cmd with its output on a pseudo terminal and copies
// everything written there to sink until the child closes it.
func runPTY(cmd *exec.Cmd, stdin io.Reader, sink io.Writer) error {
	cmd.Stdin = stdin

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer ptmx.Close()

	// Linux reports EIO once the child side is closed; that is the normal end.
	_, _ = io.Copy(sink, ptmx)

	return cmd.Wait()
}
