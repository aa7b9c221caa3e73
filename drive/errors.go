package drive

import (
	"errors"
	"fmt"
	"io/fs"
)

// PathError reports a requested path that resolves outside the drive root.
// Always a client error; never logged as a server fault.
type PathError struct {
	Requested string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path: %q", e.Requested)
}

// OpError reports a failed filesystem operation on an already-resolved path.
// Op is one of "read", "create", "delete".
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err stems from a missing file or directory
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
