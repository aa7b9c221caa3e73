package web

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"rdrive/config"
	"rdrive/drive"

	"github.com/rohanthewiz/rweb"
)

// saveSummary is one line of the per-file upload outcome report
type saveSummary struct {
	Message string `json:"message"`
	IsError bool   `json:"isError"`
}

// putHandler serves PUT for any drive path. A new_folder value (multipart
// field, form field, or JSON new_folder_name) makes it a create-directory
// request; multipart "file" parts make it an upload.
func putHandler(c rweb.Context) error {
	absPath, ok, err := guardedPath(c)
	if !ok {
		return err
	}

	if int64(len(c.Request().Body())) > config.Get().MaxUploadBytes {
		c.Response().SetStatus(413)
		return c.WriteJSON(map[string]string{"error": "request body too large"})
	}

	req, derr := decodeRequest(c.Request().Header("Content-Type"), c.Request().Body())
	if derr != nil {
		c.Response().SetStatus(400)
		return c.WriteJSON(map[string]string{"error": "invalid request body"})
	}

	if req.NewFolder != "" {
		return createFolder(c, absPath, req.NewFolder)
	}
	return uploadFiles(c, absPath, req.Files)
}

// createFolder creates one directory under the validated request path and
// responds with the refreshed listing. The folder name passes through the
// path guard again: a name like "../x" must not step out of the tree.
func createFolder(c rweb.Context, parentAbs, name string) error {
	newPath, rerr := drv.Resolve(path.Join(requestedPath(c), name))
	if rerr != nil {
		return writeDriveError(c, rerr)
	}

	if cerr := drv.CreateDir(newPath); cerr != nil {
		return writeDriveError(c, cerr)
	}
	recordActivity("create_dir", newPath, name)

	listing, lerr := drv.ListFiles(parentAbs)
	if lerr != nil {
		return writeDriveError(c, lerr)
	}
	fragment := func() string {
		return filesListingFragment(listing) + toastFragment(fmt.Sprintf("Folder %s created", name))
	}
	return respondWith(c, listing, fragment, fragment)
}

// uploadFiles persists the uploaded parts and responds with the refreshed
// listing plus a per-file outcome summary. One failed file never fails the
// batch; its line in the summary carries the error instead.
func uploadFiles(c rweb.Context, destAbs string, files []drive.Upload) error {
	results := drv.SaveFiles(files, destAbs)

	summary := make([]saveSummary, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			summary = append(summary, saveSummary{
				Message: fmt.Sprintf("File %s failed to save", r.Name),
				IsError: true,
			})
			continue
		}
		summary = append(summary, saveSummary{Message: fmt.Sprintf("File %s saved", r.Name)})
		recordActivity("upload", filepath.Join(destAbs, r.Name), "")
	}

	listing, lerr := drv.ListFiles(destAbs)
	if lerr != nil {
		return writeDriveError(c, lerr)
	}

	data := map[string]any{"files": listing, "summary": summary}
	fragment := func() string {
		return filesListingFragment(listing) + uploadSummaryToast(summary)
	}
	return respondWith(c, data, fragment, fragment)
}

// deleteHandler serves DELETE for any drive path; directories go recursively.
// Responds with the refreshed parent listing.
func deleteHandler(c rweb.Context) error {
	absPath, ok, err := guardedPath(c)
	if !ok {
		return err
	}
	if absPath == drv.Root() {
		c.Response().SetStatus(400)
		return c.WriteJSON(map[string]string{"error": "cannot delete the drive root"})
	}

	// Stat before removal so the toast can name what the target was
	info, statErr := os.Stat(absPath)
	if statErr != nil {
		return writeDriveError(c, &drive.OpError{Op: "delete", Path: absPath, Err: statErr})
	}
	message := "File deleted"
	if info.IsDir() {
		message = "Folder deleted"
	}

	if derr := drv.DeleteFileOrDir(absPath); derr != nil {
		return writeDriveError(c, derr)
	}
	recordActivity("delete", absPath, "")

	listing, lerr := drv.ListFiles(filepath.Dir(absPath))
	if lerr != nil {
		return writeDriveError(c, lerr)
	}
	fragment := func() string {
		return filesListingFragment(listing) + toastFragment(message)
	}
	return respondWith(c, listing, fragment, fragment)
}
