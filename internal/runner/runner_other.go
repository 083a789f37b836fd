//go:build !unix

package runner

import (
	"errors"
	"io"
	"os/exec"
)

const ptySupported = false

func runPTY(cmd *exec.Cmd, stdin io.Reader, sink io.Writer) error {
	return errors.New("pseudo terminals are not supported on this platform")
}
