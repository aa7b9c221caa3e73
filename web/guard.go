package web

import (
	"errors"
	"strings"

	"rdrive/drive"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Package-level drive service, set once at startup
var drv *drive.Drive

// InitDrive initializes the drive service over the configured root
func InitDrive(rootPath string) error {
	d, err := drive.New(rootPath)
	if err != nil {
		return err
	}
	drv = d
	return nil
}

// requestedPath extracts the drive-relative path from the request URL
func requestedPath(c rweb.Context) string {
	return strings.TrimPrefix(c.Request().Path(), "/")
}

// guardedPath runs the path guard for the in-flight request. On a rejected
// path it writes the 400 response itself and reports ok=false; handlers must
// return the accompanying error immediately and run no further logic.
func guardedPath(c rweb.Context) (absPath string, ok bool, err error) {
	requested := requestedPath(c)
	absPath, rerr := drv.Resolve(requested)
	if rerr != nil {
		logger.Debug("Rejected path", "path", requested)
		c.Response().SetStatus(400)
		return "", false, c.WriteJSON(map[string]string{"error": rerr.Error()})
	}
	return absPath, true, nil
}

// writeDriveError translates core errors into HTTP responses. Raw OS error
// detail stays in the server log, not the client body.
func writeDriveError(c rweb.Context, err error) error {
	var pathErr *drive.PathError
	if errors.As(err, &pathErr) {
		c.Response().SetStatus(400)
		return c.WriteJSON(map[string]string{"error": pathErr.Error()})
	}
	if drive.IsNotFound(err) {
		c.Response().SetStatus(404)
		return c.WriteJSON(map[string]string{"error": "not found"})
	}
	logger.LogErr(err, "drive operation failed")
	c.Response().SetStatus(500)
	return c.WriteJSON(map[string]string{"error": "internal error"})
}
