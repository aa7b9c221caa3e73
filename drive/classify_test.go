package drive

import (
	"os"
	"path/filepath"
	"testing"
)

// Minimal valid PNG header; enough for a signature match.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func TestClassifyFallback(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"zero-byte file", empty},
		{"nonexistent file", filepath.Join(dir, "missing.bin")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.path)
			if got != defaultFileType {
				t.Errorf("Classify(%s) = %+v, want default %+v", tt.path, got, defaultFileType)
			}
		})
	}
}

func TestClassifyKnownSignatures(t *testing.T) {
	dir := t.TempDir()

	png := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(png, pngHeader, 0644); err != nil {
		t.Fatal(err)
	}
	got := Classify(png)
	if got.Mime != "image/png" {
		t.Errorf("mime = %q, want image/png", got.Mime)
	}
	if got.FType != CategoryImage {
		t.Errorf("f_type = %q, want %q", got.FType, CategoryImage)
	}

	txt := filepath.Join(dir, "readme")
	if err := os.WriteFile(txt, []byte("just some words\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got = Classify(txt)
	if got.FType != CategoryText {
		t.Errorf("f_type = %q, want %q", got.FType, CategoryText)
	}
}

func TestKindCategoryTable(t *testing.T) {
	// Every kind must land on a category; the unknown kind on the fallback.
	tests := []struct {
		mime string
		want string
	}{
		{"image/jpeg", CategoryImage},
		{"audio/mpeg", CategoryAudio},
		{"video/mp4", CategoryVideo},
		{"font/woff2", CategoryFont},
		{"text/html", CategoryText},
		{"application/zip", CategoryArchive},
		{"application/x-tar", CategoryArchive},
		{"application/pdf", CategoryDocument},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", CategoryDocument},
		{"application/x-executable", CategoryApp},
		{"application/json", CategoryText},
		{"application/ogg", CategoryAudio},
		{"application/x-thing-nobody-knows", CategoryUnknown},
		{"mangled", CategoryUnknown},
	}
	for _, tt := range tests {
		if got := kindOf(tt.mime).category(); got != tt.want {
			t.Errorf("kindOf(%q).category() = %q, want %q", tt.mime, got, tt.want)
		}
	}
}
