package drive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestDrive(t *testing.T) *Drive {
	t.Helper()
	d, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestResolve(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	tests := []struct {
		name      string
		requested string
		want      string
		wantErr   bool
	}{
		{
			name:      "empty path resolves to root",
			requested: "",
			want:      root,
		},
		{
			name:      "simple child",
			requested: "docs",
			want:      filepath.Join(root, "docs"),
		},
		{
			name:      "nested child",
			requested: "docs/reports/2024",
			want:      filepath.Join(root, "docs/reports/2024"),
		},
		{
			name:      "dot segments collapsing inside root",
			requested: "docs/../music",
			want:      filepath.Join(root, "music"),
		},
		{
			name:      "single parent escape",
			requested: "..",
			wantErr:   true,
		},
		{
			name:      "deep parent escape",
			requested: "../../../../etc/passwd",
			wantErr:   true,
		},
		{
			name:      "escape hidden behind child segment",
			requested: "docs/../../outside",
			wantErr:   true,
		},
		{
			name:      "sibling with root as string prefix",
			requested: "../" + filepath.Base(root) + "extra",
			wantErr:   true,
		},
		{
			name:      "absolute-like path stays under root",
			requested: "/etc/passwd",
			want:      filepath.Join(root, "etc/passwd"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Resolve(tt.requested)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) = %q, want error", tt.requested, got)
				}
				pathErr, ok := err.(*PathError)
				if !ok {
					t.Fatalf("Resolve(%q) error type = %T, want *PathError", tt.requested, err)
				}
				if !strings.Contains(pathErr.Error(), tt.requested) {
					t.Errorf("error %q does not identify requested path %q", pathErr.Error(), tt.requested)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.requested, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.requested, got, tt.want)
			}
		})
	}
}

// Containment property: for any input, Resolve either errors or yields a path
// still under the root.
func TestResolveContainment(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	inputs := []string{
		"", ".", "..", "../..", "a/../../b", "a/b/c", "a/./b",
		"....//....//etc", "..\\..\\windows", "/", "//etc//passwd",
		"..//../", "a/../../../a/b", strings.Repeat("../", 40) + "tmp",
	}
	for _, in := range inputs {
		got, err := d.Resolve(in)
		if err != nil {
			continue
		}
		if got != root && !strings.HasPrefix(got, root+string(os.PathSeparator)) {
			t.Errorf("Resolve(%q) = %q escapes root %q", in, got, root)
		}
	}
}
