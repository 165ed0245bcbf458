package core

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/validator"
	"github.com/mishaello/re-blog/models"
)

const maxCommentLength = 1000

var ErrCommentNotCreated = xerrors.Message("Comment was not created")

// ValidateCommentContent checks the comment body before anything is sent to
// the backend: non-blank after trimming and at most 1000 characters.
func ValidateCommentContent(content string) *validator.Validator {
	v := validator.New()
	trimmed := strings.TrimSpace(content)
	v.CheckNotBlank(trimmed, "content", "must not be empty")
	v.CheckMaxLength(trimmed, maxCommentLength, "content", "must be at most 1000 characters")
	return v
}

// SubmitComment inserts a comment on a post for an already resolved user
// identifier and returns it joined with the commenter profile for immediate
// display. The caller is responsible for resolving the identity first (see
// identity.Service.Ensure) and for validating the content.
func (c *Core) SubmitComment(ctx context.Context, postID, content, userID string) (*models.CommentWithAuthor, error) {
	comment, err := c.store.InsertComment(ctx, &models.Comment{
		ID:        uuid.NewString(),
		Content:   strings.TrimSpace(content),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		c.log.Error("inserting comment failed", "post_id", postID, "error", err)
		return nil, xerrors.New(ErrCommentNotCreated)
	}
	if comment == nil {
		return nil, xerrors.New(ErrCommentNotCreated)
	}

	joined := &models.CommentWithAuthor{Comment: *comment}

	profile, err := c.store.ProfileByID(ctx, comment.UserID)
	switch {
	case err == nil:
		joined.Author = profile
	case errors.Is(err, NoRecordFound):
		// brand-new or anonymous commenter, no profile yet
	default:
		c.log.Error("fetching commenter profile failed", "user_id", comment.UserID, "error", err)
	}

	return joined, nil
}
