package drive

import (
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// FileType is the classification attached to non-directory entries.
type FileType struct {
	Mime  string `json:"mime"`
	FType string `json:"f_type"`
}

// Categories for FileType.FType. Derived from a magic-byte sniff of the
// file's leading bytes; CategoryUnknown is the fallback when sniffing fails.
const (
	CategoryApp      = "app"
	CategoryArchive  = "archive"
	CategoryAudio    = "audio"
	CategoryDocument = "document"
	CategoryFont     = "font"
	CategoryImage    = "image"
	CategoryText     = "text"
	CategoryVideo    = "video"
	CategoryUnknown  = "unknown"
)

// defaultFileType is returned whenever a file cannot be classified:
// unreadable, zero-length, or carrying no recognizable signature.
var defaultFileType = FileType{Mime: "application/octet-stream", FType: CategoryUnknown}

// kind is the broad family a sniffed MIME type belongs to. Every kind maps to
// exactly one category in kind.category; keep the switch exhaustive when
// adding values.
type kind int

const (
	kindUnknown kind = iota
	kindApp
	kindArchive
	kindAudio
	kindDocument
	kindFont
	kindImage
	kindText
	kindVideo
)

// Classify sniffs the leading bytes of the file at path and reports its MIME
// type and category. It never fails the caller; any error degrades to
// defaultFileType.
func Classify(path string) FileType {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return defaultFileType
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return defaultFileType
	}

	mime := mtype.String()
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if mime == "" || mime == "application/octet-stream" {
		return defaultFileType
	}

	return FileType{Mime: mime, FType: kindOf(mime).category()}
}

func (k kind) category() string {
	switch k {
	case kindApp:
		return CategoryApp
	case kindArchive:
		return CategoryArchive
	case kindAudio:
		return CategoryAudio
	case kindDocument:
		return CategoryDocument
	case kindFont:
		return CategoryFont
	case kindImage:
		return CategoryImage
	case kindText:
		return CategoryText
	case kindVideo:
		return CategoryVideo
	case kindUnknown:
		return CategoryUnknown
	}
	return CategoryUnknown
}

// kindOf buckets a sniffed MIME type into a broad kind. The top-level MIME
// class decides most of it; application/* subtypes are split between
// executables, archives, documents, and structured text.
func kindOf(mime string) kind {
	class, sub, found := strings.Cut(mime, "/")
	if !found {
		return kindUnknown
	}

	switch class {
	case "image":
		return kindImage
	case "audio":
		return kindAudio
	case "video":
		return kindVideo
	case "font":
		return kindFont
	case "text":
		return kindText
	case "model":
		return kindDocument
	case "application":
		return applicationKind(sub)
	}
	return kindUnknown
}

func applicationKind(sub string) kind {
	switch sub {
	case "x-executable", "x-sharedlib", "x-mach-binary", "x-object",
		"vnd.microsoft.portable-executable", "x-msdownload", "wasm",
		"x-shockwave-flash":
		return kindApp
	case "zip", "x-tar", "gzip", "x-gzip", "x-bzip2", "x-xz", "zstd",
		"x-7z-compressed", "x-rar-compressed", "vnd.rar", "x-compress",
		"x-iso9660-image", "x-cpio", "vnd.debian.binary-package", "x-rpm",
		"vnd.android.package-archive", "jar", "java-archive":
		return kindArchive
	case "pdf", "postscript", "rtf", "msword", "vnd.ms-excel",
		"vnd.ms-powerpoint", "epub+zip", "vnd.visio", "x-mobipocket-ebook":
		return kindDocument
	case "json", "xml", "javascript", "x-javascript", "x-sh", "x-perl",
		"x-python", "x-php", "x-httpd-php", "csv", "x-ndjson", "x-subrip",
		"sql":
		return kindText
	case "ogg":
		return kindAudio
	}

	// Office and OpenDocument families carry long vendor subtypes
	if strings.HasPrefix(sub, "vnd.openxmlformats-officedocument.") ||
		strings.HasPrefix(sub, "vnd.oasis.opendocument.") {
		return kindDocument
	}
	return kindUnknown
}
