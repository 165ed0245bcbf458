package core

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/mdobak/go-xerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngUpload(size int64) *Upload {
	return &Upload{
		Filename:    "sunset.png",
		ContentType: "image/png",
		Size:        size,
		Body:        strings.NewReader("fake image bytes"),
	}
}

func TestAttachImage(t *testing.T) {
	t.Run("stores the image under a per-user path and returns its URL", func(t *testing.T) {
		var storedPath, storedType string
		objects := &fakeObjects{
			UploadFn: func(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
				storedPath = path
				storedType = contentType
				return path, nil
			},
		}

		url, err := newTestCore(nil, objects, nil).AttachImage(context.Background(), "u1", pngUpload(1024))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(storedPath, "u1/"))
		assert.True(t, strings.HasSuffix(storedPath, ".png"))
		assert.Equal(t, "image/png", storedType)
		assert.Equal(t, "https://objects.test/"+storedPath, url)
	})

	t.Run("rejects a missing file before anything else", func(t *testing.T) {
		_, err := newTestCore(nil, nil, nil).AttachImage(context.Background(), "", nil)
		assert.ErrorIs(t, err, ErrNoFileSelected)

		_, err = newTestCore(nil, nil, nil).AttachImage(context.Background(), "", &Upload{})
		assert.ErrorIs(t, err, ErrNoFileSelected)
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		upload := pngUpload(1024)
		upload.ContentType = "application/pdf"

		_, err := newTestCore(nil, nil, nil).AttachImage(context.Background(), "u1", upload)
		assert.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("rejects images over the size limit", func(t *testing.T) {
		_, err := newTestCore(nil, nil, nil).AttachImage(context.Background(), "u1", pngUpload(5_242_881))
		assert.ErrorIs(t, err, ErrImageTooLarge)

		_, err = newTestCore(nil, nil, nil).AttachImage(context.Background(), "u1", pngUpload(5_242_880))
		assert.NoError(t, err)
	})

	t.Run("requires a session only after the file checks", func(t *testing.T) {
		// a bad file from a signed-out visitor reports the file problem
		upload := pngUpload(1024)
		upload.ContentType = "text/plain"
		_, err := newTestCore(nil, nil, nil).AttachImage(context.Background(), "", upload)
		assert.ErrorIs(t, err, ErrNotAnImage)

		// a valid file without a session reports the session problem
		_, err = newTestCore(nil, nil, nil).AttachImage(context.Background(), "", pngUpload(1024))
		assert.ErrorIs(t, err, ErrSignInRequired)
	})

	t.Run("nothing reaches storage when validation fails", func(t *testing.T) {
		objects := &fakeObjects{
			UploadFn: func(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
				t.Fatal("storage must not be touched for an invalid upload")
				return "", nil
			},
		}

		_, err := newTestCore(nil, objects, nil).AttachImage(context.Background(), "u1", pngUpload(6_000_000))
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("a storage failure surfaces as a generic upload error", func(t *testing.T) {
		objects := &fakeObjects{
			UploadFn: func(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
				return "", xerrors.New("bucket unavailable")
			},
		}

		_, err := newTestCore(nil, objects, nil).AttachImage(context.Background(), "u1", pngUpload(1024))
		assert.ErrorIs(t, err, ErrUploadFailed)
	})
}
