package drive

import (
	"path/filepath"
	"strings"
)

// Resolve joins a caller-supplied relative path onto the drive root and
// returns the resulting absolute path. The join collapses any ".." segments,
// so the result is accepted only when it is the root itself or sits strictly
// below it; anything else is a *PathError.
//
// This is a boundary check, not a sandbox: a symlink inside the root that
// points outside it will still be followed by later filesystem calls.
func (d *Drive) Resolve(requested string) (string, error) {
	joined := filepath.Join(d.root, requested)
	if joined != d.root && !strings.HasPrefix(joined, d.root+string(filepath.Separator)) {
		return "", &PathError{Requested: requested}
	}
	return joined, nil
}
