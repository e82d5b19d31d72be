package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	_ "image/jpeg" // register JPEG decoder
)

var (
	// ErrFileTooLarge means the upload exceeded the configured ceiling.
	ErrFileTooLarge = errors.New("uploaded file exceeds size limit")
	// ErrUnsupportedFormat means the actual bytes are neither JPEG nor PNG.
	ErrUnsupportedFormat = errors.New("unsupported image format, JPEG or PNG required")
)

// Converter normalizes uploaded profile photos: it verifies size and
// real content type, decodes the source and re-encodes it as PNG under
// a deterministic filename derived from the profile id. Because the
// output path is derived, callers can compute a photo reference without
// a lookup.
type Converter struct {
	dir      string
	maxBytes int64
}

func NewConverter(dir string, maxBytes int64) *Converter {
	return &Converter{dir: dir, maxBytes: maxBytes}
}

// Filename returns the stored filename for a profile id.
func Filename(profileID string) string {
	return profileID + ".png"
}

// Ingest converts src into <dir>/<id>.png and returns the stored
// filename.
//
// Rules:
//   - declaredSize (when known) and the actual byte count must not
//     exceed the ceiling; oversized uploads are rejected before any
//     decode or disk write.
//   - The content type is sniffed from the leading bytes, not taken
//     from client metadata, and must be image/jpeg or image/png.
//   - On encode failure the partial output file is removed; the
//     adapter never writes through a temporary file, so no stray
//     source artifact is left behind.
func (c *Converter) Ingest(src io.Reader, declaredSize int64, profileID string) (string, error) {
	if declaredSize > c.maxBytes {
		return "", ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(src, c.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > c.maxBytes {
		return "", ErrFileTooLarge
	}

	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png":
	default:
		return "", ErrUnsupportedFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}

	filename := Filename(profileID)
	outPath := filepath.Join(c.dir, filename)
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}

	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		_ = os.Remove(outPath)
		return "", fmt.Errorf("failed to encode photo: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(outPath)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	return filename, nil
}
