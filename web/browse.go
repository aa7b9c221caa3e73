package web

import (
	"os"

	"rdrive/drive"

	"github.com/rohanthewiz/rweb"
)

// browseHandler serves GET for any drive path: a listing page or fragment
// for directories, raw bytes for files.
func browseHandler(c rweb.Context) error {
	absPath, ok, err := guardedPath(c)
	if !ok {
		return err
	}

	info, statErr := os.Stat(absPath)
	if statErr != nil {
		return writeDriveError(c, &drive.OpError{Op: "read", Path: absPath, Err: statErr})
	}
	if !info.IsDir() {
		return serveFile(c, absPath)
	}

	listing, lerr := drv.ListFiles(absPath)
	if lerr != nil {
		return writeDriveError(c, lerr)
	}
	return respondWith(c, listing,
		func() string { return filesListingFragment(listing) },
		func() string { return indexPage(listing) },
	)
}

// serveFile streams the file's bytes with its sniffed content type
func serveFile(c rweb.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return writeDriveError(c, &drive.OpError{Op: "read", Path: path, Err: err})
	}
	ft := drive.Classify(path)
	c.Response().SetHeader("Content-Type", ft.Mime)
	_, err = c.Response().Write(data)
	return err
}
