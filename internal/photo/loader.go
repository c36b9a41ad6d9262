// Package photo validates uploaded image files and turns them into
// embeddable previews.
package photo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxBytes is the largest accepted upload (10 MiB).
const MaxBytes int64 = 10 * 1024 * 1024

var (
	ErrUnsupportedType = errors.New("photo: unsupported file type")
	ErrTooLarge        = errors.New("photo: file too large")
)

// UserMessage returns the text shown to the visitor for a rejected upload.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedType):
		return "Please upload an image file (JPG, PNG, JPEG)"
	case errors.Is(err, ErrTooLarge):
		return "File size must be less than 10MB"
	default:
		return "We could not read that file. Please try another photo."
	}
}

// Upload is a file handed over by the client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Photo is the accepted image, encoded as a data URL for previewing.
type Photo struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size"`
	DataURL  string `json:"data_url"`
}

// Loader validates and encodes uploads.
type Loader struct {
	maxBytes int64
}

func NewLoader(maxBytes int64) *Loader {
	if maxBytes <= 0 {
		maxBytes = MaxBytes
	}
	return &Loader{maxBytes: maxBytes}
}

// Load validates the upload and reads it into a Photo. The declared type is
// trusted when present; an empty or generic type is sniffed from the bytes.
func (l *Loader) Load(ctx context.Context, up Upload) (*Photo, error) {
	if up.Body == nil {
		return nil, fmt.Errorf("photo: empty upload")
	}
	declared := normalizeType(up.ContentType)
	if declared != "" && !isImage(declared) {
		return nil, ErrUnsupportedType
	}
	if up.Size > l.maxBytes {
		return nil, ErrTooLarge
	}

	data, err := readAll(ctx, io.LimitReader(up.Body, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("photo: read upload: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, ErrTooLarge
	}

	mimeType := declared
	if mimeType == "" {
		mimeType = normalizeType(mimetype.Detect(data).String())
		if !isImage(mimeType) {
			return nil, ErrUnsupportedType
		}
	}

	return &Photo{
		Filename: up.Filename,
		MIMEType: mimeType,
		Size:     int64(len(data)),
		DataURL:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(chunk)
		buf.Write(chunk[:n])
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func normalizeType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.Index(ct, ";"); i != -1 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "application/octet-stream" {
		return ""
	}
	return ct
}

func isImage(ct string) bool {
	return strings.HasPrefix(normalizeType(ct), "image/")
}
