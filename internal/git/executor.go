package git

import (
	"bytes"
	"errors"
	"os/exec"
)

// gitCommandExecutor runs a git subcommand and reports its output streams
// and exit code separately. A non-zero exit is not an error here; callers
// decide how to react to each stream.
type gitCommandExecutor interface {
	execute(args ...string) (stdout, stderr []byte, exitCode int, err error)
}

type realGitExecutor struct {
	dir string
}

func newRealGitExecutor(dir string) realGitExecutor {
	return realGitExecutor{dir: dir}
}

func (e realGitExecutor) execute(args ...string) ([]byte, []byte, int, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = e.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, nil, 0, err
		}
		return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
	}
	return stdout.Bytes(), stderr.Bytes(), 0, nil
}
