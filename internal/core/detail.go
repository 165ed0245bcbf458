package core

import (
	"context"
	"errors"
	"regexp"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/utils/collectionutils"
	"github.com/mishaello/re-blog/internal/utils/functional"
	"github.com/mishaello/re-blog/models"
)

// Post identifiers are UUIDs; anything else is rejected before a row query
// is ever issued.
var postIDPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

type PostDetail struct {
	Post     *models.PostWithAuthor
	Comments []*models.CommentWithAuthor
}

// GetPostDetail loads one post with its author and all comments with their
// authors, oldest comment first. A malformed identifier or a missing post
// yields NoRecordFound; failures while enriching with profiles or comments
// degrade to partial data.
func (c *Core) GetPostDetail(ctx context.Context, id string) (*PostDetail, error) {
	if !postIDPattern.MatchString(id) {
		return nil, xerrors.New(NoRecordFound)
	}

	post, err := c.store.PostByID(ctx, id)
	if err != nil {
		if errors.Is(err, NoRecordFound) {
			return nil, xerrors.New(NoRecordFound)
		}
		return nil, xerrors.New(err)
	}

	detail := &PostDetail{
		Post:     &models.PostWithAuthor{Post: *post},
		Comments: []*models.CommentWithAuthor{},
	}

	if post.UserID != "" {
		profile, err := c.store.ProfileByID(ctx, post.UserID)
		switch {
		case err == nil:
			detail.Post.Author = profile
		case errors.Is(err, NoRecordFound):
			// author never edited a profile
		default:
			c.log.Error("fetching post author profile failed", "post_id", id, "error", err)
		}
	}

	comments, err := c.store.CommentsByPost(ctx, id)
	if err != nil {
		c.log.Error("fetching comments failed", "post_id", id, "error", err)
		return detail, nil
	}

	commenterIDs := collectionutils.Distinct(functional.Map(comments, func(cm *models.Comment) string {
		return cm.UserID
	}))

	profiles, err := c.store.ProfilesByIDs(ctx, commenterIDs)
	if err != nil {
		c.log.Error("fetching commenter profiles failed", "post_id", id, "error", err)
		profiles = nil
	}

	profileByUserID := collectionutils.Associate(profiles, func(p *models.Profile) (string, *models.Profile) {
		return p.ID, p
	})

	var noProfile *models.Profile
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, &models.CommentWithAuthor{
			Comment: *comment,
			Author:  collectionutils.GetOrDefault(profileByUserID, comment.UserID, noProfile),
		})
	}

	return detail, nil
}
