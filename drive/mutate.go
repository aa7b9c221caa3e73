package drive

import (
	"os"
	"path/filepath"
)

// Upload is one file received from a client, held in memory until saved.
type Upload struct {
	Name string
	Data []byte
}

// SaveResult is the outcome of persisting one upload.
type SaveResult struct {
	Name string
	Err  error
}

// CreateDir creates a single new directory at path. The parent must already
// exist; an existing entry at path is an error.
func (d *Drive) CreateDir(path string) error {
	if err := os.Mkdir(path, 0755); err != nil {
		return &OpError{Op: "create", Path: path, Err: err}
	}
	return nil
}

// DeleteFileOrDir removes path. Directories are removed recursively. A
// missing path is an error (RemoveAll alone would mask it).
func (d *Drive) DeleteFileOrDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &OpError{Op: "delete", Path: path, Err: err}
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return &OpError{Op: "delete", Path: path, Err: err}
	}
	return nil
}

// SaveFiles persists each named upload under destDir, overwriting any
// existing file of the same name. Outcomes are reported per file under the
// name actually written; one bad file never fails the batch. Uploads with an
// empty name are dropped.
func (d *Drive) SaveFiles(files []Upload, destDir string) []SaveResult {
	results := make([]SaveResult, 0, len(files))
	for _, f := range files {
		if f.Name == "" {
			continue
		}
		// Client-supplied names may carry directory parts; keep the base only
		name := filepath.Base(f.Name)
		results = append(results, SaveResult{Name: name, Err: d.saveOne(name, f.Data, destDir)})
	}
	return results
}

// saveOne writes the upload to a hidden temp file in destDir and renames it
// into place, so a reader never observes a partially written file under the
// final name.
func (d *Drive) saveOne(name string, data []byte, destDir string) error {
	dest := filepath.Join(destDir, name)

	tmp, err := os.CreateTemp(destDir, ".upload-*")
	if err != nil {
		return &OpError{Op: "create", Path: dest, Err: err}
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err == nil {
		err = os.Rename(tmpName, dest)
	}
	if err != nil {
		os.Remove(tmpName)
		return &OpError{Op: "create", Path: dest, Err: err}
	}
	return nil
}
