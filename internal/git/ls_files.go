package git

import (
	"bytes"
	"fmt"
	"slices"
)

// ListResult carries the raw streams and exit code of the tracked-file
// listing command. Paths stay byte-strings until the caller decides to
// decode them.
type ListResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// FileLister lists the tracked files of a repository.
type FileLister interface {
	LsFiles() (*ListResult, error)
}

// Repo lists tracked files of a local git repository via ls-files.
type Repo struct {
	dir      string
	executor gitCommandExecutor
}

func NewRepo(dir string) *Repo {
	return &Repo{
		dir:      dir,
		executor: newRealGitExecutor(dir),
	}
}

// LsFiles runs "git ls-files -z". The returned error only covers failure
// to run git at all; tool-level errors are reported through the result's
// Stderr and ExitCode fields.
func (r *Repo) LsFiles() (*ListResult, error) {
	stdout, stderr, exitCode, err := r.executor.execute("ls-files", "-z")
	if err != nil {
		return nil, fmt.Errorf("running git ls-files: %w", err)
	}
	return &ListResult{Stdout: stdout, Stderr: stderr, ExitCode: exitCode}, nil
}

// TrackedFiles splits the null-separated listing into path byte-strings,
// sorted byte-wise.
func (lr *ListResult) TrackedFiles() [][]byte {
	paths := bytes.Split(lr.Stdout, []byte{0})
	slices.SortFunc(paths, bytes.Compare)
	return paths
}
