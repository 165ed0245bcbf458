package core

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/utils/collectionutils"
	"github.com/mishaello/re-blog/internal/utils/functional"
	"github.com/mishaello/re-blog/models"
)

type Stats struct {
	TotalPosts      int `json:"totalPosts"`
	ThisYearPosts   int `json:"thisYearPosts"`
	TotalCategories int `json:"totalCategories"`
}

type Dashboard struct {
	Profile     *models.Profile
	Posts       []*models.Post
	PostsByYear map[string][]*models.Post
	// Years lists the bucket keys in descending order.
	Years      []string
	Categories []string
	Stats      Stats
}

// LoadDashboard gathers everything the signed-in user's dashboard needs:
// their profile (absence tolerated), their posts grouped by calendar year,
// the distinct categories among their own posts and summary counts. A
// failing posts fetch fails the whole load; a failing profile fetch only
// loses the profile.
func (c *Core) LoadDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	dashboard := &Dashboard{}

	profile, err := c.store.ProfileByID(ctx, userID)
	switch {
	case err == nil:
		dashboard.Profile = profile
	case errors.Is(err, NoRecordFound):
		// no profile yet: the user never edited one
	default:
		c.log.Error("fetching profile failed", "user_id", userID, "error", err)
	}

	posts, err := c.store.PostsByUser(ctx, userID)
	if err != nil {
		return nil, xerrors.New(err)
	}

	dashboard.Posts = posts
	dashboard.PostsByYear = GroupPostsByYear(posts)
	dashboard.Years = yearsDescending(dashboard.PostsByYear)
	dashboard.Categories = distinctCategories(posts)
	dashboard.Stats = DeriveStats(posts, dashboard.PostsByYear, dashboard.Categories, time.Now())

	return dashboard, nil
}

// GroupPostsByYear buckets posts by the 4-digit year of their creation
// timestamp, preserving the input order within each bucket.
func GroupPostsByYear(posts []*models.Post) map[string][]*models.Post {
	return collectionutils.GroupBy(posts, func(p *models.Post) string {
		return p.CreatedAt.Format("2006")
	})
}

// FilterPostsByCategory narrows year buckets to a single category, dropping
// years that end up empty. The "all" sentinel returns the input unchanged.
func FilterPostsByCategory(byYear map[string][]*models.Post, category string) map[string][]*models.Post {
	if category == CategoryAll || category == "" {
		return byYear
	}

	filtered := make(map[string][]*models.Post)
	for year, posts := range byYear {
		matching := functional.Filter(posts, func(p *models.Post) bool {
			return p.Category != nil && *p.Category == category
		})
		if len(matching) > 0 {
			filtered[year] = matching
		}
	}

	return filtered
}

// DeriveStats computes the dashboard counters from already loaded data; no
// extra fetch happens here.
func DeriveStats(posts []*models.Post, byYear map[string][]*models.Post, categories []string, now time.Time) Stats {
	thisYear := now.Format("2006")
	var noPosts []*models.Post

	return Stats{
		TotalPosts:      len(posts),
		ThisYearPosts:   len(collectionutils.GetOrDefault(byYear, thisYear, noPosts)),
		TotalCategories: len(categories),
	}
}

func distinctCategories(posts []*models.Post) []string {
	withCategory := functional.Filter(posts, func(p *models.Post) bool {
		return p.Category != nil && *p.Category != ""
	})

	return collectionutils.Distinct(functional.Map(withCategory, func(p *models.Post) string {
		return *p.Category
	}))
}

func yearsDescending(byYear map[string][]*models.Post) []string {
	years := make([]string, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}
