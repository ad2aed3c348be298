package git

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// mockGitExecutor implements gitCommandExecutor for testing
type mockGitExecutor struct {
	stdout   []byte
	stderr   []byte
	exitCode int
	err      error
	commands [][]string
}

func (e *mockGitExecutor) execute(args ...string) ([]byte, []byte, int, error) {
	e.commands = append(e.commands, args)
	if e.err != nil {
		return nil, nil, 0, e.err
	}
	return e.stdout, e.stderr, e.exitCode, nil
}

func TestLsFiles(t *testing.T) {
	tt := []struct {
		name         string
		stdout       string
		stderr       string
		exitCode     int
		execErr      error
		expectErr    bool
		wantExitCode int
	}{
		{
			name:   "successful listing",
			stdout: "a.py\x00b.txt\x00",
		},
		{
			name:         "tool error stream",
			stderr:       "fatal: not a git repository\n",
			exitCode:     128,
			wantExitCode: 128,
		},
		{
			name:      "git cannot be run",
			execErr:   errors.New("executable file not found"),
			expectErr: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			executor := &mockGitExecutor{
				stdout:   []byte(tc.stdout),
				stderr:   []byte(tc.stderr),
				exitCode: tc.exitCode,
				err:      tc.execErr,
			}
			repo := &Repo{dir: ".", executor: executor}

			listing, err := repo.LsFiles()
			if tc.expectErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.Join(executor.commands[0], " "); got != "ls-files -z" {
				t.Errorf("unexpected git command: %q", got)
			}
			if string(listing.Stdout) != tc.stdout {
				t.Errorf("Stdout = %q, want %q", listing.Stdout, tc.stdout)
			}
			if string(listing.Stderr) != tc.stderr {
				t.Errorf("Stderr = %q, want %q", listing.Stderr, tc.stderr)
			}
			if listing.ExitCode != tc.wantExitCode {
				t.Errorf("ExitCode = %d, want %d", listing.ExitCode, tc.wantExitCode)
			}
		})
	}
}

func TestTrackedFilesSorted(t *testing.T) {
	listing := &ListResult{Stdout: []byte("b.py\x00a.py\x00sub/c.cc\x00")}

	got := listing.TrackedFiles()
	want := [][]byte{[]byte(""), []byte("a.py"), []byte("b.py"), []byte("sub/c.cc")}
	if len(got) != len(want) {
		t.Fatalf("TrackedFiles() returned %d paths, want %d", len(got), len(want))
	}
	for i := range want {
		if !bytes.Equal(got[i], want[i]) {
			t.Errorf("TrackedFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
