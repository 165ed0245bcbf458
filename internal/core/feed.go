package core

import (
	"context"

	"github.com/mishaello/re-blog/internal/utils/collectionutils"
	"github.com/mishaello/re-blog/internal/utils/functional"
	"github.com/mishaello/re-blog/models"
)

const feedPageSize = 10

// CategoryAll is the sentinel filter value meaning "no category filter".
const CategoryAll = "all"

type Feed struct {
	Posts      []*models.PostWithAuthor
	Categories []string
}

// GetFeed assembles the home feed: the newest page of posts for the given
// category, each joined with its author profile, plus the distinct
// categories across all posts for the filter control. Backend errors never
// abort the page; whatever was retrieved is rendered and the failure is
// logged.
func (c *Core) GetFeed(ctx context.Context, category string) *Feed {
	feed := &Feed{
		Posts:      []*models.PostWithAuthor{},
		Categories: []string{},
	}

	if category == CategoryAll {
		category = ""
	}

	posts, err := c.store.Posts(ctx, category, feedPageSize)
	if err != nil {
		c.log.Error("fetching feed posts failed", "category", category, "error", err)
	}

	categories, err := c.store.Categories(ctx)
	if err != nil {
		c.log.Error("fetching categories failed", "error", err)
	} else if categories != nil {
		feed.Categories = categories
	}

	if len(posts) == 0 {
		return feed
	}

	userIDs := collectionutils.Distinct(functional.Map(posts, func(p *models.Post) string {
		return p.UserID
	}))

	profiles, err := c.store.ProfilesByIDs(ctx, userIDs)
	if err != nil {
		c.log.Error("fetching feed profiles failed", "error", err)
		profiles = nil
	}

	profileByUserID := collectionutils.Associate(profiles, func(p *models.Profile) (string, *models.Profile) {
		return p.ID, p
	})

	var noProfile *models.Profile
	for _, post := range posts {
		feed.Posts = append(feed.Posts, &models.PostWithAuthor{
			Post:   *post,
			Author: collectionutils.GetOrDefault(profileByUserID, post.UserID, noProfile),
		})
	}

	return feed
}
