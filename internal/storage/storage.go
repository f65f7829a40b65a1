// Package storage keeps uploaded report images outside the database and
// hands back the reference stored as a report's imageUrl.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ErrNotImage is returned for uploads whose content is not an image.
var ErrNotImage = errors.New("storage: not an image")

// Upload is one received image file.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ImageStore interface {
	// Save persists the upload and returns its public reference.
	Save(ctx context.Context, u Upload) (string, error)
	// Delete removes a previously saved image; unknown references are not an error.
	Delete(ctx context.Context, ref string) error
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".heic": true,
	".bmp":  true,
}

var (
	newID   = uuid.NewString
	timeNow = time.Now
)

// sniffLen is how much of the body is inspected for magic numbers.
const sniffLen = 512

// SniffImage detects the upload's type from the first bytes of its body and
// returns ErrNotImage unless they are an image. A declared Content-Type that
// names something other than an image is rejected as well. On success the
// body is rewound and ContentType is replaced by the detected type.
func SniffImage(u *Upload) error {
	if u == nil || u.Body == nil {
		return ErrNotImage
	}
	declared := strings.ToLower(strings.TrimSpace(u.ContentType))
	if declared != "" && declared != "application/octet-stream" && !strings.HasPrefix(declared, "image/") {
		return ErrNotImage
	}

	var start int64
	seeker, seekable := u.Body.(io.Seeker)
	if seekable {
		pos, err := seeker.Seek(0, io.SeekCurrent)
		if err != nil {
			seekable = false
		}
		start = pos
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(u.Body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	if seekable {
		if _, err := seeker.Seek(start, io.SeekStart); err != nil {
			return fmt.Errorf("rewind upload: %w", err)
		}
	} else {
		u.Body = io.MultiReader(bytes.NewReader(head), u.Body)
	}

	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), "image/") {
		return ErrNotImage
	}
	u.ContentType = mt.String()
	return nil
}

// objectName builds a collision-free name that keeps the original extension.
func objectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		ext = ""
	}
	return newID() + ext
}

// objectKey nests objectName under a date prefix for bucket listings.
func objectKey(filename string) string {
	d := timeNow().UTC()
	return fmt.Sprintf("reports/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), objectName(filename))
}
