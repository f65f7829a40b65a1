package storage

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func fixedIDs(t *testing.T, id string) {
	t.Helper()
	newID = func() string { return id }
	timeNow = func() time.Time { return time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		newID = uuid.NewString
		timeNow = time.Now
	})
}

const (
	pngMagic  = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00"
	jpegMagic = "\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01"
	pdfMagic  = "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n"
)

// onceReader hides the Seek method of its reader.
type onceReader struct{ io.Reader }

func TestSniffImage(t *testing.T) {
	cases := []struct {
		name     string
		ct       string
		body     string
		wantErr  error
		detected string
	}{
		{"png", "image/png", pngMagic, nil, "image/png"},
		{"jpeg declared as png", "image/png", jpegMagic, nil, "image/jpeg"},
		{"no declared type", "", pngMagic, nil, "image/png"},
		{"octet stream", "application/octet-stream", jpegMagic, nil, "image/jpeg"},
		{"pdf renamed to png", "image/png", pdfMagic, ErrNotImage, ""},
		{"text declared as image", "image/jpeg", "hello world", ErrNotImage, ""},
		{"declared non image", "application/pdf", pngMagic, ErrNotImage, ""},
		{"empty body", "image/png", "", ErrNotImage, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := Upload{Filename: "scan.png", ContentType: tc.ct, Body: strings.NewReader(tc.body)}
			err := SniffImage(&u)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.detected, u.ContentType)
			rest, err := io.ReadAll(u.Body)
			require.NoError(t, err)
			require.Equal(t, tc.body, string(rest))
		})
	}
}

func TestSniffImageRestoresUnseekableBody(t *testing.T) {
	body := pngMagic + strings.Repeat("x", 2*sniffLen)
	u := Upload{ContentType: "image/png", Body: onceReader{strings.NewReader(body)}}
	require.NoError(t, SniffImage(&u))
	rest, err := io.ReadAll(u.Body)
	require.NoError(t, err)
	require.Equal(t, body, string(rest))
}

func TestSniffImageNilBody(t *testing.T) {
	require.ErrorIs(t, SniffImage(&Upload{ContentType: "image/png"}), ErrNotImage)
}

func TestObjectNames(t *testing.T) {
	fixedIDs(t, "0b7c")
	require.Equal(t, "0b7c.png", objectName("X-Ray.PNG"))
	require.Equal(t, "0b7c", objectName("payload.exe"))
	require.Equal(t, "reports/2024/03/09/0b7c.jpg", objectKey("a.jpg"))
}
