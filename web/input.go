package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/url"
	"strings"

	"rdrive/drive"

	"github.com/rohanthewiz/serr"
)

// driveRequest is the canonical decoding of the three wire encodings (JSON
// body, urlencoded form, multipart form) accepted by the search and
// create-directory endpoints. Handlers only ever see this shape.
type driveRequest struct {
	Query     string
	NewFolder string
	Files     []drive.Upload
}

// jsonDriveRequest mirrors the JSON body field names
type jsonDriveRequest struct {
	Query         string `json:"query"`
	NewFolderName string `json:"new_folder_name"`
}

// decodeRequest picks the decoder from the Content-Type header. Unknown or
// absent content types fall through to urlencoded-form parsing, which
// yields an empty request for an empty body.
func decodeRequest(contentType string, body []byte) (driveRequest, error) {
	mediaType := contentType
	var params map[string]string
	if contentType != "" {
		if mt, p, err := mime.ParseMediaType(contentType); err == nil {
			mediaType, params = mt, p
		}
	}

	switch {
	case mediaType == "application/json":
		return decodeJSON(body)
	case strings.HasPrefix(mediaType, "multipart/"):
		return decodeMultipart(body, params["boundary"])
	default:
		return decodeForm(body)
	}
}

func decodeJSON(body []byte) (req driveRequest, err error) {
	var payload jsonDriveRequest
	if err = json.Unmarshal(body, &payload); err != nil {
		return req, serr.Wrap(err, "invalid JSON body")
	}
	req.Query = payload.Query
	req.NewFolder = payload.NewFolderName
	return req, nil
}

func decodeForm(body []byte) (req driveRequest, err error) {
	vals, err := url.ParseQuery(string(body))
	if err != nil {
		return req, serr.Wrap(err, "invalid form body")
	}
	req.Query = vals.Get("query")
	req.NewFolder = vals.Get("new_folder")
	return req, nil
}

func decodeMultipart(body []byte, boundary string) (req driveRequest, err error) {
	if boundary == "" {
		return req, serr.New("multipart body without boundary")
	}

	mr := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, perr := mr.NextPart()
		if perr == io.EOF {
			return req, nil
		}
		if perr != nil {
			return req, serr.Wrap(perr, "invalid multipart body")
		}

		data, rerr := io.ReadAll(part)
		part.Close()
		if rerr != nil {
			return req, serr.Wrap(rerr, "failed to read multipart part")
		}

		switch part.FormName() {
		case "query":
			req.Query = string(data)
		case "new_folder":
			req.NewFolder = string(data)
		case "file":
			req.Files = append(req.Files, drive.Upload{Name: part.FileName(), Data: data})
		}
	}
}
