package web

import (
	"github.com/rohanthewiz/rweb"
)

// queryHandler serves POST / — a recursive name search across the drive.
// The query arrives as a form field, multipart field, or JSON body.
func queryHandler(c rweb.Context) error {
	req, err := decodeRequest(c.Request().Header("Content-Type"), c.Request().Body())
	if err != nil {
		c.Response().SetStatus(400)
		return c.WriteJSON(map[string]string{"error": "invalid request body"})
	}
	if req.Query == "" {
		c.Response().SetStatus(400)
		return c.WriteJSON(map[string]string{"error": "query parameter required"})
	}

	files, qerr := drv.QueryFiles(req.Query)
	if qerr != nil {
		return writeDriveError(c, qerr)
	}

	recordActivity("search", "", req.Query)

	data := map[string]any{"files": files}
	fragment := func() string { return queryResultsFragment(req.Query, files) }
	return respondWith(c, data, fragment, fragment)
}
