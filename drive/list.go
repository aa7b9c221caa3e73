package drive

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo is one child entry in a listing or search result. Directories
// carry no FileType; Metadata is nil when the entry could not be stat'ed.
type FileInfo struct {
	Name     string    `json:"name"`
	IsDir    bool      `json:"is_dir"`
	FileType *FileType `json:"file_type"`
	Metadata *Metadata `json:"metadata"`
}

// Metadata carries stat-derived details where obtainable. Times are unix
// seconds; CreatedAt is null on platforms that cannot supply it.
type Metadata struct {
	CreatedAt  *int64 `json:"created_at"`
	ModifiedAt *int64 `json:"modified_at"`
	Size       *int64 `json:"size"`
}

// FilesResult is a directory listing plus the root-relative display paths of
// the listed directory and its parent. Path is "" at the root; Parent is nil
// at the root.
type FilesResult struct {
	Files  []FileInfo `json:"files"`
	Path   string     `json:"path"`
	Parent *string    `json:"parent"`
}

// ListFiles enumerates one directory. Hidden entries (names starting with
// ".") are suppressed. A child whose classification or stat fails still
// appears, with nil FileType/Metadata; only failure to read the directory
// itself fails the listing.
func (d *Drive) ListFiles(dir string) (FilesResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return FilesResult{}, &OpError{Op: "read", Path: dir, Err: err}
	}

	files := make([]FileInfo, 0, len(entries))
	for _, ent := range entries {
		name := ent.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		files = append(files, d.entryInfo(filepath.Join(dir, name), name, ent.IsDir()))
	}
	orderEntries(files)

	result := FilesResult{Files: files}
	result.Path, err = d.displayPath(dir)
	if err != nil {
		return FilesResult{}, &OpError{Op: "read", Path: dir, Err: err}
	}
	if dir != d.root {
		if parent, perr := d.displayPath(filepath.Dir(dir)); perr == nil {
			result.Parent = &parent
		}
	}
	return result, nil
}

// entryInfo builds the FileInfo for one child. Files are classified and
// stat'ed; directories carry name and flag only.
func (d *Drive) entryInfo(path, name string, isDir bool) FileInfo {
	fi := FileInfo{Name: name, IsDir: isDir}
	if !isDir {
		ft := Classify(path)
		fi.FileType = &ft
		fi.Metadata = statMetadata(path)
	}
	return fi
}

func statMetadata(path string) *Metadata {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	mod := info.ModTime().Unix()
	size := info.Size()
	return &Metadata{
		CreatedAt:  createdAt(info),
		ModifiedAt: &mod,
		Size:       &size,
	}
}

// orderEntries applies the listing order: files ahead of directories, names
// descending within each group. Equivalent to sorting ascending by
// (is_dir, name) and reversing.
func orderEntries(files []FileInfo) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].IsDir != files[j].IsDir {
			return !files[i].IsDir
		}
		return files[i].Name > files[j].Name
	})
}

// displayPath renders path relative to the root as a "/"-prefixed string,
// or "" for the root itself.
func (d *Drive) displayPath(path string) (string, error) {
	rel, err := filepath.Rel(d.root, path)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", nil
	}
	return "/" + filepath.ToSlash(rel), nil
}
