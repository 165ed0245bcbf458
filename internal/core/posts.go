package core

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/validator"
	"github.com/mishaello/re-blog/models"
)

var ErrNotPostOwner = xerrors.Message("Only the author can modify the post")

// ValidatePost checks the creation/edit form fields.
func ValidatePost(title, content string) *validator.Validator {
	v := validator.New()
	v.CheckNotBlank(title, "title", "must be provided")
	v.CheckNotBlank(content, "content", "must be provided")
	return v
}

// CreatePost stores a new post owned by userID. Empty category and image
// values are stored as NULL.
func (c *Core) CreatePost(ctx context.Context, title, content, category, imageURL, userID string) (*models.Post, error) {
	post, err := c.store.InsertPost(ctx, &models.Post{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		Content:   content,
		Category:  optional(category),
		ImageURL:  optional(imageURL),
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, xerrors.New(err)
	}

	return post, nil
}

// UpdatePost patches an owned post. The store matches on both the post id
// and the owning user, so a non-owner ends up with NoRecordFound.
func (c *Core) UpdatePost(ctx context.Context, id, title, content, category, imageURL, userID string) (*models.Post, error) {
	now := time.Now()
	post, err := c.store.UpdatePost(ctx, &models.Post{
		ID:        id,
		Title:     strings.TrimSpace(title),
		Content:   content,
		Category:  optional(category),
		ImageURL:  optional(imageURL),
		UserID:    userID,
		UpdatedAt: &now,
	})
	if err != nil {
		return nil, xerrors.New(err)
	}

	return post, nil
}

// DeletePost removes a post and its comments in one transaction. The delete
// predicate carries both the post id and the owning user id; when nothing
// matches the transaction rolls back and the attempt fails, leaving data
// unchanged.
func (c *Core) DeletePost(ctx context.Context, id, userID string) error {
	return c.tx.DoTransactionally(ctx, func(txCtx context.Context) error {
		if _, err := c.store.DeleteCommentsByPost(txCtx, id); err != nil {
			return xerrors.New(err)
		}

		affected, err := c.store.DeletePost(txCtx, id, userID)
		if err != nil {
			return xerrors.New(err)
		}
		if affected == 0 {
			return xerrors.New(ErrNotPostOwner)
		}

		return nil
	})
}

func optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
