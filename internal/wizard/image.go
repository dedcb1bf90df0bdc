package wizard

import (
	"errors"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotImage is returned when an uploaded file is not an image MIME type.
var ErrNotImage = errors.New("file is not an image")

// Image is the binary blob attached to a draft. The draft is its sole
// owner: it is released when replaced, on cancel, and after submit.
type Image struct {
	Name string
	MIME string
	Data []byte

	released bool
}

func (i *Image) IsImage() bool {
	return strings.HasPrefix(i.MIME, "image/")
}

// Release drops the blob. Safe to call more than once.
func (i *Image) Release() {
	if i.released {
		return
	}
	i.Data = nil
	i.released = true
}

func (i *Image) Released() bool { return i.released }

// LoadImage reads a file from disk and wraps it as a draft image. The MIME
// type comes from the extension; anything that is not image/* is rejected
// with ErrNotImage rather than silently dropped.
func LoadImage(path string) (*Image, error) {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrNotImage
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &Image{
		Name: filepath.Base(path),
		MIME: mimeType,
		Data: data,
	}, nil
}
