package git

import (
	"bytes"
	"fmt"
	"strings"
)

// RefReader reads file contents from a specific git ref
type RefReader struct {
	ref      string
	executor gitCommandExecutor
}

// NewRefReader creates a RefReader for reading files as of the given ref
func NewRefReader(ref string, dir string) *RefReader {
	return &RefReader{
		ref:      ref,
		executor: newRealGitExecutor(dir),
	}
}

// ReadFile reads a file from the git ref
func (r *RefReader) ReadFile(path string) ([]byte, error) {
	// Normalize path - remove leading slash if present
	path = strings.TrimPrefix(path, "/")

	stdout, stderr, exitCode, err := r.executor.execute("show", fmt.Sprintf("%s:%s", r.ref, path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s from ref %s: %w", path, r.ref, err)
	}
	if exitCode != 0 {
		return nil, fmt.Errorf("failed to read file %s from ref %s: %s", path, r.ref, bytes.TrimSpace(stderr))
	}
	return stdout, nil
}
