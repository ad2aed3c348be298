package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
	"github.com/multimediallc/copyright-plus/internal/git"
	f "github.com/multimediallc/copyright-plus/pkg/functional"
	"github.com/multimediallc/copyright-plus/pkg/license"
)

// candidatePattern is the fixed extension allowlist for checked files.
const candidatePattern = "**/*.{cc,hh,py}"

// ErrListingFailed flags a failed tracked-file listing. The scanner has
// already printed the cause by the time it returns this, so callers should
// exit non-zero without printing anything more.
var ErrListingFailed = errors.New("file listing failed")

// Config holds the scanner configuration
type Config struct {
	Dir    string
	Ignore []string
	Out    io.Writer
	ErrOut io.Writer
}

// contentReader reads the contents of one candidate file by path.
type contentReader interface {
	ReadFile(path string) ([]byte, error)
}

type worktreeReader struct {
	dir string
}

func (r worktreeReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.dir, path))
}

// App represents the scanner with its dependencies
type App struct {
	config    *Config
	matcher   *license.Matcher
	lister    git.FileLister
	differ    git.Differ
	reader    contentReader
	refReader func(ref string) contentReader
}

// New creates a scanner for the repository at cfg.Dir. The matching rule
// is built once here and reused for every file.
func New(cfg Config) *App {
	return &App{
		config:  &cfg,
		matcher: license.NewMatcher(),
		lister:  git.NewRepo(cfg.Dir),
		differ:  git.NewDiffer(cfg.Dir),
		reader:  worktreeReader{dir: cfg.Dir},
		refReader: func(ref string) contentReader {
			return git.NewRefReader(ref, cfg.Dir)
		},
	}
}

// Run checks every tracked candidate file and prints the owner summary.
//
// A listing-tool failure is fatal: any stderr text is relayed, a bare
// non-zero exit code is printed as "Return code N", and no checking
// happens. Per-file header misses are reported inline and do not affect
// the outcome.
func (a *App) Run() error {
	listing, err := a.lister.LsFiles()
	if err != nil {
		fmt.Fprintf(a.config.ErrOut, "Error: %s\n", err)
		return ErrListingFailed
	}
	if len(listing.Stderr) > 0 {
		fmt.Fprintln(a.config.ErrOut, string(listing.Stderr))
		return ErrListingFailed
	}
	if listing.ExitCode != 0 {
		fmt.Fprintf(a.config.Out, "Return code %d\n", listing.ExitCode)
		return ErrListingFailed
	}
	paths := f.Map(listing.TrackedFiles(), func(p []byte) string { return string(p) })
	a.checkFiles(paths, a.reader)
	return nil
}

// RunWorktree walks the working tree instead of asking git, so files not
// yet tracked are checked too. The walk honors gitignore rules and skips
// the .git directory.
func (a *App) RunWorktree() error {
	if stat, err := os.Lstat(a.config.Dir); err != nil || !stat.IsDir() {
		return fmt.Errorf("root is not a directory: %s", a.config.Dir)
	}

	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(a.config.Dir, fileListQueue)
	walker.IncludeHidden = true
	walker.ExcludeDirectory = []string{".git"}

	errChan := make(chan error)
	go func() {
		errChan <- walker.Start()
		close(errChan)
	}()

	paths := make([]string, 0)
	for file := range fileListQueue {
		paths = append(paths, stripRoot(a.config.Dir, file.Location))
	}
	if err := <-errChan; err != nil {
		return fmt.Errorf("walking %s: %w", a.config.Dir, err)
	}

	slices.Sort(paths)
	a.checkFiles(paths, a.reader)
	return nil
}

// RunDiff checks only the candidate files touched between base and head,
// reading their contents as of the head ref.
func (a *App) RunDiff(base, head string) error {
	files, err := a.differ.ChangedFiles(base, head)
	if err != nil {
		return fmt.Errorf("diffing %s...%s: %w", base, head, err)
	}
	slices.Sort(files)
	a.checkFiles(files, a.refReader(head))
	return nil
}

// checkFiles runs the matcher over every candidate path and prints the
// per-file failures followed by the deduplicated owner summary.
func (a *App) checkFiles(paths []string, reader contentReader) {
	candidates := f.Filtered(paths, a.isCandidate)
	owners := f.NewSet[string]()
	for _, path := range candidates {
		contents, err := reader.ReadFile(path)
		if err != nil {
			fmt.Fprintf(a.config.Out, "*** Cannot read %s: %s\n", path, err)
			continue
		}
		if owner, ok := a.matcher.Match(contents); ok {
			owners.Add(string(owner))
		} else {
			fmt.Fprintf(a.config.Out, "*** No license text: %s\n", path)
		}
	}

	fmt.Fprintln(a.config.Out, "Copyright owners:")
	names := owners.Items()
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(a.config.Out, "  %s\n", name)
	}
}

func (a *App) isCandidate(path string) bool {
	match, err := doublestar.Match(candidatePattern, path)
	if err != nil || !match {
		return false
	}
	for _, prefix := range a.config.Ignore {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

func stripRoot(root string, path string) string {
	root = strings.TrimSuffix(root, "/")
	if root == "." || root == "" {
		return path
	}
	return strings.TrimPrefix(path, root+"/")
}
