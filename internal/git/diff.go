package git

import (
	"bytes"
	"fmt"
	"strings"

	f "github.com/multimediallc/copyright-plus/pkg/functional"
	"github.com/sourcegraph/go-diff/diff"
)

// Differ reports the files touched between two refs.
type Differ interface {
	ChangedFiles(base, head string) ([]string, error)
}

// GitDiffer parses "git diff" output to find changed files.
type GitDiffer struct {
	dir      string
	executor gitCommandExecutor
}

func NewDiffer(dir string) *GitDiffer {
	return &GitDiffer{
		dir:      dir,
		executor: newRealGitExecutor(dir),
	}
}

// ChangedFiles returns the paths changed between base and head, excluding
// deletions. Paths are deduplicated but not sorted.
func (d *GitDiffer) ChangedFiles(base, head string) ([]string, error) {
	stdout, stderr, exitCode, err := d.executor.execute("diff", "-U0", fmt.Sprintf("%s...%s", base, head))
	if err != nil {
		return nil, fmt.Errorf("running git diff: %w", err)
	}
	if exitCode != 0 {
		return nil, fmt.Errorf("git diff exited %d: %s", exitCode, bytes.TrimSpace(stderr))
	}
	fileDiffs, err := diff.ParseMultiFileDiff(stdout)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(fileDiffs))
	for _, fd := range fileDiffs {
		if fd.NewName == "/dev/null" {
			continue
		}
		files = append(files, strings.TrimPrefix(fd.NewName, "b/"))
	}
	return f.RemoveDuplicates(files), nil
}
