// Package localfs lists directories and prints directory trees.
//
// All access goes through FS, a narrow view of a go-billy filesystem, so the
// same code runs against the host filesystem (osfs) and in-memory trees
// (memfs) in tests.
package localfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/rescale/pathscope/internal/logging"
)

// IndentStep is the number of spaces each tree level adds in Crawl output.
const IndentStep = 3

// FS is the subset of billy.Filesystem the explorer needs.
type FS interface {
	Stat(filename string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Join(elem ...string) string
}

// FileEntry represents a file or directory seen by the explorer.
type FileEntry struct {
	Path    string      // Full path to the entry
	Name    string      // Base name of the entry
	Size    int64       // Size in bytes as reported by the filesystem
	IsDir   bool        // True if this is a directory (symlinks followed)
	ModTime time.Time   // Last modification time
	Mode    fs.FileMode // File mode/permissions (of the link itself for symlinks)
}

// Explorer lists and crawls paths on an FS.
type Explorer struct {
	fs     FS
	logger *logging.Logger
}

// NewExplorer creates an explorer over fsys. A nil logger discards output.
func NewExplorer(fsys FS, logger *logging.Logger) *Explorer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Explorer{fs: fsys, logger: logger}
}

// NewOSExplorer creates an explorer over the host filesystem. Paths are used
// as given, so relative paths resolve against the working directory.
func NewOSExplorer(logger *logging.Logger) *Explorer {
	return NewExplorer(osfs.Default, logger)
}

// IsDir reports whether path currently refers to a directory.
// Any stat failure, including a missing path, counts as "not a directory".
func (e *Explorer) IsDir(path string) bool {
	info, err := e.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// List returns the immediate children of the directory at path, in the order
// the filesystem enumerates them. Nothing is filtered or sorted.
//
// If path is not a directory, List returns a *NotADirectoryError.
func (e *Explorer) List(path string) ([]FileEntry, error) {
	if !e.IsDir(path) {
		return nil, &NotADirectoryError{Path: path}
	}

	infos, err := e.fs.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	result := make([]FileEntry, 0, len(infos))
	for _, info := range infos {
		result = append(result, e.entry(e.fs.Join(path, info.Name()), info))
	}

	e.logger.Debug().Str("path", path).Int("entries", len(result)).Msg("listed directory")
	return result, nil
}

// WalkFunc is the callback signature for Walk. depth is 0 for the root.
// Return filepath.SkipDir to skip a directory's children, or any other error
// to stop walking.
type WalkFunc func(entry FileEntry, depth int) error

type walkItem struct {
	path  string
	depth int
}

// Walk visits root and everything below it in pre-order: each node is
// visited before its children, and children follow enumeration order.
//
// Traversal uses an explicit stack rather than recursion, so tree depth is
// bounded only by memory. There is no cycle detection; a symlink loop will
// not terminate.
func (e *Explorer) Walk(root string, fn WalkFunc) error {
	stack := []walkItem{{path: root, depth: 0}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entry := e.stat(item.path)
		err := fn(entry, item.depth)
		if errors.Is(err, filepath.SkipDir) {
			continue
		}
		if err != nil {
			return err
		}
		if !entry.IsDir {
			continue
		}

		infos, err := e.fs.ReadDir(item.path)
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", item.path, err)
		}

		// Push in reverse so the first enumerated child is popped first
		for i := len(infos) - 1; i >= 0; i-- {
			stack = append(stack, walkItem{
				path:  e.fs.Join(item.path, infos[i].Name()),
				depth: item.depth + 1,
			})
		}
	}

	return nil
}

// Crawl prints the tree rooted at path to w, one line per node, starting
// with no indentation.
func (e *Explorer) Crawl(w io.Writer, path string) error {
	return e.CrawlIndent(w, path, 0)
}

// CrawlIndent prints the base name of path prefixed by indent spaces, then
// every node below it in pre-order, each level indented IndentStep further.
// A non-directory path prints a single line.
func (e *Explorer) CrawlIndent(w io.Writer, path string, indent int) error {
	if indent < 0 {
		indent = 0
	}
	lines := 0
	err := e.Walk(path, func(entry FileEntry, depth int) error {
		lines++
		pad := strings.Repeat(" ", indent+depth*IndentStep)
		if _, err := fmt.Fprintln(w, pad+entry.Name); err != nil {
			return fmt.Errorf("failed to write tree line: %w", err)
		}
		return nil
	})
	e.logger.Debug().Str("path", path).Int("lines", lines).Msg("crawled tree")
	return err
}

// stat builds a FileEntry for path. Paths that cannot be stat'ed still yield
// an entry carrying the name, treated as a non-directory leaf.
func (e *Explorer) stat(path string) FileEntry {
	info, err := e.fs.Stat(path)
	if err != nil {
		e.logger.Debug().Err(err).Str("path", path).Msg("stat failed, treating as leaf")
		return FileEntry{Path: path, Name: BaseName(path)}
	}
	return FileEntry{
		Path:    path,
		Name:    BaseName(path),
		Size:    info.Size(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
		Mode:    info.Mode(),
	}
}

// entry converts a ReadDir result. ReadDir does not follow symlinks, so a
// link is stat'ed again to learn whether it points at a directory.
func (e *Explorer) entry(path string, info os.FileInfo) FileEntry {
	isDir := info.IsDir()
	if info.Mode()&fs.ModeSymlink != 0 {
		isDir = e.IsDir(path)
	}
	return FileEntry{
		Path:    path,
		Name:    info.Name(),
		Size:    info.Size(),
		IsDir:   isDir,
		ModTime: info.ModTime(),
		Mode:    info.Mode(),
	}
}

// BaseName returns the last element of path after cleaning, so "root/"
// yields "root".
func BaseName(path string) string {
	return filepath.Base(filepath.Clean(path))
}

// List lists a directory on the host filesystem.
func List(path string) ([]FileEntry, error) {
	return NewOSExplorer(nil).List(path)
}

// Crawl prints the tree rooted at path on the host filesystem to w.
func Crawl(w io.Writer, path string) error {
	return NewOSExplorer(nil).Crawl(w, path)
}
