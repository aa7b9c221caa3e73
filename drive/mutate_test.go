package drive

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDir(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	target := filepath.Join(root, "newdir")
	if err := d.CreateDir(target); err != nil {
		t.Fatalf("CreateDir: %v", err)
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		t.Fatalf("created directory missing: %v", err)
	}

	// Existing target
	if err := d.CreateDir(target); err == nil {
		t.Error("expected error creating an existing directory")
	} else if _, ok := err.(*OpError); !ok {
		t.Errorf("error type = %T, want *OpError", err)
	}

	// Missing parent (single-level create only)
	if err := d.CreateDir(filepath.Join(root, "no", "parent")); err == nil {
		t.Error("expected error when parent is missing")
	}
}

func TestDeleteFileOrDir(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	// Single file
	file := filepath.Join(root, "gone.txt")
	writeFile(t, file, "bye")
	if err := d.DeleteFileOrDir(file); err != nil {
		t.Fatalf("delete file: %v", err)
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Error("file still present after delete")
	}

	// Directory with nested content
	nested := filepath.Join(root, "dir", "sub")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(nested, "deep.txt"), "deep")
	writeFile(t, filepath.Join(root, "dir", "top.txt"), "top")

	if err := d.DeleteFileOrDir(filepath.Join(root, "dir")); err != nil {
		t.Fatalf("delete dir: %v", err)
	}
	res, err := d.ListFiles(root)
	if err != nil {
		t.Fatalf("ListFiles after delete: %v", err)
	}
	for _, f := range res.Files {
		if f.Name == "dir" {
			t.Error("deleted directory still listed")
		}
	}

	// Missing target must error, and as not-found
	err = d.DeleteFileOrDir(filepath.Join(root, "never-was"))
	if err == nil {
		t.Fatal("expected error deleting a missing path")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for %v", err)
	}
}

func TestSaveFiles(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	// A directory squatting on one destination name forces a per-file failure
	if err := os.Mkdir(filepath.Join(root, "taken"), 0755); err != nil {
		t.Fatal(err)
	}

	results := d.SaveFiles([]Upload{
		{Name: "ok.txt", Data: []byte("saved")},
		{Name: "taken", Data: []byte("collides with a directory")},
		{Name: "", Data: []byte("dropped, no filename")},
	}, root)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (empty name dropped): %+v", len(results), results)
	}
	if results[0].Name != "ok.txt" || results[0].Err != nil {
		t.Errorf("ok.txt should save cleanly: %+v", results[0])
	}
	if results[1].Name != "taken" || results[1].Err == nil {
		t.Errorf("colliding upload should fail: %+v", results[1])
	}

	data, err := os.ReadFile(filepath.Join(root, "ok.txt"))
	if err != nil || string(data) != "saved" {
		t.Errorf("saved content = %q, %v", data, err)
	}

	// Listing reflects only the successful save; no temp leftovers
	res, err := d.ListFiles(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range res.Files {
		if f.Name != "ok.txt" && f.Name != "taken" {
			t.Errorf("unexpected entry after upload: %q", f.Name)
		}
	}
}

func TestSaveFilesOverwrites(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	writeFile(t, filepath.Join(root, "doc.txt"), "old contents")

	results := d.SaveFiles([]Upload{{Name: "doc.txt", Data: []byte("new")}}, root)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("overwrite failed: %+v", results)
	}
	data, err := os.ReadFile(filepath.Join(root, "doc.txt"))
	if err != nil || string(data) != "new" {
		t.Errorf("content after overwrite = %q, %v", data, err)
	}
}

func TestSaveFilesStripsDirectoryParts(t *testing.T) {
	d := newTestDrive(t)
	root := d.Root()

	results := d.SaveFiles([]Upload{{Name: "../sneaky.txt", Data: []byte("x")}}, root)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("save failed: %+v", results)
	}
	// The reported name is the name actually written, not the raw client name
	if results[0].Name != "sneaky.txt" {
		t.Errorf("result name = %q, want %q", results[0].Name, "sneaky.txt")
	}
	if _, err := os.Stat(filepath.Join(root, "sneaky.txt")); err != nil {
		t.Errorf("upload not saved under its base name: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(root), "sneaky.txt")); err == nil {
		t.Error("upload escaped the destination directory")
	}
}
