package wizard

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	png := filepath.Join(dir, "banner.png")
	if err := os.WriteFile(png, []byte("not-really-png"), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadImage(png)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.MIME != "image/png" {
		t.Errorf("MIME = %q", img.MIME)
	}
	if img.Name != "banner.png" {
		t.Errorf("Name = %q", img.Name)
	}
	if len(img.Data) == 0 {
		t.Error("no data read")
	}

	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(txt); err != ErrNotImage {
		t.Errorf("text file: err = %v, want ErrNotImage", err)
	}
}

func TestImageReleaseIdempotent(t *testing.T) {
	img := &Image{Name: "a.png", MIME: "image/png", Data: []byte{1, 2, 3}}

	img.Release()
	img.Release()

	if !img.Released() {
		t.Error("not released")
	}
	if img.Data != nil {
		t.Error("data retained after release")
	}
}
