package localfs

import (
	"errors"
	"fmt"
)

// ErrNotADirectory is matched by every *NotADirectoryError via errors.Is.
var ErrNotADirectory = errors.New("not a directory")

// NotADirectoryError reports a listing attempted on a path that is not a
// directory. A path that does not exist is reported the same way.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("path %q is not a directory", e.Path)
}

// Is makes errors.Is(err, ErrNotADirectory) succeed.
func (e *NotADirectoryError) Is(target error) bool {
	return target == ErrNotADirectory
}

// IsNotADirectory checks whether err is, or wraps, a NotADirectoryError.
func IsNotADirectory(err error) bool {
	return errors.Is(err, ErrNotADirectory)
}
