package drive

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// QueryFiles walks the whole drive for entries whose name begins with query,
// case-insensitively. Query characters are literal: glob metacharacters have
// no special meaning, so a query cannot broaden its own match. Hidden entries
// and everything beneath hidden directories are excluded. Unreadable or
// vanished paths encountered mid-walk are skipped, not fatal.
func (d *Drive) QueryFiles(query string) ([]FileInfo, error) {
	q := strings.ToLower(query)
	var results []FileInfo

	err := filepath.WalkDir(d.root, func(path string, ent fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if path == d.root {
			return nil
		}
		name := ent.Name()
		if strings.HasPrefix(name, ".") {
			if ent.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(strings.ToLower(name), q) {
			results = append(results, d.entryInfo(path, name, ent.IsDir()))
		}
		return nil
	})
	if err != nil {
		return nil, &OpError{Op: "read", Path: d.root, Err: err}
	}

	orderEntries(results)
	return results, nil
}
