package core

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/utils/stringutils"
)

// 5 MiB
const maxImageBytes = 5_242_880

var (
	ErrNoFileSelected = xerrors.Message("No file was selected")
	ErrNotAnImage     = xerrors.Message("Only image files can be attached")
	ErrImageTooLarge  = xerrors.Message("Image must not exceed 5MB")
	ErrSignInRequired = xerrors.Message("Sign in to upload images")
	ErrUploadFailed   = xerrors.Message("Image upload failed")
)

// Upload describes a user-selected file.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AttachImage validates the upload and stores it under a per-user,
// time-ordered path, returning the public URL to record on the post. The
// checks run in a fixed order and the first failing one wins; nothing is
// uploaded unless all pass. Storage failures surface as a generic upload
// error and leave the caller's image reference unchanged.
func (c *Core) AttachImage(ctx context.Context, userID string, upload *Upload) (string, error) {
	if upload == nil || upload.Filename == "" {
		return "", xerrors.New(ErrNoFileSelected)
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return "", xerrors.New(ErrNotAnImage)
	}
	if upload.Size > maxImageBytes {
		return "", xerrors.New(ErrImageTooLarge)
	}
	if userID == "" {
		return "", xerrors.New(ErrSignInRequired)
	}

	path := fmt.Sprintf("%s/%d.%s", userID, time.Now().UnixMilli(), stringutils.FileExt(upload.Filename))

	stored, err := c.objects.Upload(ctx, path, upload.ContentType, upload.Body)
	if err != nil {
		c.log.Error("uploading image failed", "path", path, "error", err)
		return "", xerrors.New(ErrUploadFailed)
	}

	return c.objects.PublicURL(stored), nil
}
