package drive

import (
	"os"
	"path/filepath"
	"testing"
)

func TestQueryFiles(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	if err := os.MkdirAll(filepath.Join(root, "docs", "Reports"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "report.txt"), "q1")
	writeFile(t, filepath.Join(root, "docs", "REPORT-final.txt"), "q2")
	writeFile(t, filepath.Join(root, "docs", "summary.txt"), "s")

	results, err := d.QueryFiles("rep")
	if err != nil {
		t.Fatalf("QueryFiles: %v", err)
	}

	// Prefix match is case-insensitive and recursive; "Reports" the
	// directory matches too. Files first, names descending.
	want := []string{"report.txt", "REPORT-final.txt", "Reports"}
	if len(results) != len(want) {
		t.Fatalf("got %d results %v, want %d", len(results), names(results), len(want))
	}
	for i, name := range want {
		if results[i].Name != name {
			t.Errorf("result %d = %q, want %q", i, results[i].Name, name)
		}
	}
}

func TestQueryFilesSubstringDoesNotMatch(t *testing.T) {
	d := newTestDrive(t)
	writeFile(t, filepath.Join(d.Root(), "annual-report.txt"), "x")

	results, err := d.QueryFiles("report")
	if err != nil {
		t.Fatalf("QueryFiles: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("interior substring matched: %v", names(results))
	}
}

func TestQueryFilesHiddenSuppression(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	writeFile(t, filepath.Join(root, ".report-secret"), "hidden")
	if err := os.MkdirAll(filepath.Join(root, ".stash"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, ".stash", "report.txt"), "inside hidden dir")

	results, err := d.QueryFiles("report")
	if err != nil {
		t.Fatalf("QueryFiles: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("hidden entries leaked into search: %v", names(results))
	}
}

func TestQueryFilesLiteralMetacharacters(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	writeFile(t, filepath.Join(root, "star.txt"), "x")
	writeFile(t, filepath.Join(root, "*weird-name"), "y")

	// "*" must match only names literally starting with an asterisk
	results, err := d.QueryFiles("*")
	if err != nil {
		t.Fatalf("QueryFiles: %v", err)
	}
	if len(results) != 1 || results[0].Name != "*weird-name" {
		t.Errorf("glob metacharacter was not literal: %v", names(results))
	}
}

func names(results []FileInfo) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}
