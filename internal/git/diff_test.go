package git

import (
	"errors"
	"slices"
	"testing"
)

// Test fixtures
const sampleGitDiff = `diff --git a/src/file1.py b/src/file1.py
index abc..def 100644
--- a/src/file1.py
+++ b/src/file1.py
@@ -10,0 +11 @@ def example():
+    print("New line")
diff --git a/file2.cc b/file2.cc
index ghi..jkl 100644
--- a/file2.cc
+++ b/file2.cc
@@ -20,0 +21,2 @@ int main() {
+  first();
+  second();
`

func TestChangedFiles(t *testing.T) {
	tt := []struct {
		name       string
		mockOutput string
		exitCode   int
		execErr    error
		expectErr  bool
		expected   []string
	}{
		{
			name:       "successful diff",
			mockOutput: sampleGitDiff,
			expected:   []string{"src/file1.py", "file2.cc"},
		},
		{
			name:       "empty diff",
			mockOutput: "",
			expected:   []string{},
		},
		{
			name:      "git cannot be run",
			execErr:   errors.New("executable file not found"),
			expectErr: true,
		},
		{
			name:      "diff exits non-zero",
			exitCode:  128,
			expectErr: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			executor := &mockGitExecutor{
				stdout:   []byte(tc.mockOutput),
				exitCode: tc.exitCode,
				err:      tc.execErr,
			}
			differ := &GitDiffer{dir: ".", executor: executor}

			files, err := differ.ChangedFiles("main", "feature")
			if tc.expectErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(files, tc.expected) {
				t.Errorf("ChangedFiles() = %v, want %v", files, tc.expected)
			}
		})
	}
}
