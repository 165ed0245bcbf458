// Package core holds the composers and flows of the site: feed assembly,
// post detail aggregation, comment submission, dashboard derivation and
// image attachment. It talks to the data backend only through the Store
// interface.
package core

import (
	"context"
	"io"
	"log/slog"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/utils/databaseutils"
	"github.com/mishaello/re-blog/models"
)

var NoRecordFound = xerrors.Message("No record found")

// Store is the row-level contract against the data backend.
type Store interface {
	// Posts returns up to limit posts, newest first. An empty category
	// means no filter.
	Posts(ctx context.Context, category string, limit int) ([]*models.Post, error)
	PostByID(ctx context.Context, id string) (*models.Post, error)
	PostsByUser(ctx context.Context, userID string) ([]*models.Post, error)
	InsertPost(ctx context.Context, post *models.Post) (*models.Post, error)
	// UpdatePost patches a post matched by both id and owning user.
	UpdatePost(ctx context.Context, post *models.Post) (*models.Post, error)
	DeletePost(ctx context.Context, id, userID string) (int64, error)
	// Categories returns the distinct non-empty category values across all
	// posts, independent of any page limit.
	Categories(ctx context.Context) ([]string, error)

	CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	InsertComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	DeleteCommentsByPost(ctx context.Context, postID string) (int64, error)

	ProfileByID(ctx context.Context, id string) (*models.Profile, error)
	ProfilesByIDs(ctx context.Context, ids []string) ([]*models.Profile, error)
	UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

// ObjectStorage is the binary store for post images.
type ObjectStorage interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error)
	PublicURL(path string) string
}

type Core struct {
	log     *slog.Logger
	store   Store
	objects ObjectStorage
	tx      databaseutils.TxRunner
}

func New(store Store, objects ObjectStorage, tx databaseutils.TxRunner, log *slog.Logger) *Core {
	return &Core{
		log:     log,
		store:   store,
		objects: objects,
		tx:      tx,
	}
}
