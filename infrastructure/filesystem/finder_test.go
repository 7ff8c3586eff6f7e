package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFinder_ListVideos(t *testing.T) {
	dir := t.TempDir()

	// deliberately created out of name order
	for _, name := range []string{"c.mp4", "a.mp4", "notes.txt", "b.mp4", "B_UPPER.MP4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.mp4"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().ListVideos(dir, ".mp4")
	if err != nil {
		t.Fatalf("ListVideos() unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "B_UPPER.MP4"),
		filepath.Join(dir, "a.mp4"),
		filepath.Join(dir, "b.mp4"),
		filepath.Join(dir, "c.mp4"),
	}

	if len(got) != len(want) {
		t.Fatalf("ListVideos() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListVideos()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFinder_ListVideos_EmptyDirectory(t *testing.T) {
	got, err := NewFinder().ListVideos(t.TempDir(), ".mp4")
	if err != nil {
		t.Fatalf("ListVideos() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListVideos() = %v, want empty", got)
	}
}

func TestFinder_ListVideos_MissingDirectory(t *testing.T) {
	if _, err := NewFinder().ListVideos("/does/not/exist", ".mp4"); err == nil {
		t.Error("ListVideos() expected error for missing directory")
	}
}

func TestChecker(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	checker := NewChecker()

	if !checker.Exists(file) {
		t.Errorf("Exists(%q) = false, want true", file)
	}
	if !checker.Exists(dir) {
		t.Errorf("Exists(%q) = false, want true", dir)
	}
	if checker.Exists(filepath.Join(dir, "missing.mp4")) {
		t.Error("Exists() = true for missing file")
	}

	if checker.IsDir(file) {
		t.Errorf("IsDir(%q) = true, want false", file)
	}
	if !checker.IsDir(dir) {
		t.Errorf("IsDir(%q) = false, want true", dir)
	}
}
