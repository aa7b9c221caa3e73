package drive

import (
	"os"
	"path/filepath"

	"github.com/rohanthewiz/serr"
)

// Drive provides root-scoped access to a directory tree. The root is fixed at
// construction and never changes for the life of the process; all request
// paths are resolved against it through Resolve before any filesystem I/O.
type Drive struct {
	root string
}

// New creates a Drive rooted at rootPath
func New(rootPath string) (*Drive, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, serr.Wrap(err, "failed to get absolute path")
	}

	// Verify the path exists and is a directory
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, serr.Wrap(err, "failed to stat root path")
	}
	if !info.IsDir() {
		return nil, serr.New("drive root is not a directory")
	}

	return &Drive{root: absPath}, nil
}

// Root returns the absolute root directory of the drive
func (d *Drive) Root() string {
	return d.root
}
