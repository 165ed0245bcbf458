package core

import (
	"context"
	"io"
	"log/slog"

	"github.com/mishaello/re-blog/models"
)

// fakeStore implements Store with per-method function fields so each test
// overrides only what it exercises. Unset methods return empty results.
type fakeStore struct {
	PostsFn                func(ctx context.Context, category string, limit int) ([]*models.Post, error)
	PostByIDFn             func(ctx context.Context, id string) (*models.Post, error)
	PostsByUserFn          func(ctx context.Context, userID string) ([]*models.Post, error)
	InsertPostFn           func(ctx context.Context, post *models.Post) (*models.Post, error)
	UpdatePostFn           func(ctx context.Context, post *models.Post) (*models.Post, error)
	DeletePostFn           func(ctx context.Context, id, userID string) (int64, error)
	CategoriesFn           func(ctx context.Context) ([]string, error)
	CommentsByPostFn       func(ctx context.Context, postID string) ([]*models.Comment, error)
	InsertCommentFn        func(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	DeleteCommentsByPostFn func(ctx context.Context, postID string) (int64, error)
	ProfileByIDFn          func(ctx context.Context, id string) (*models.Profile, error)
	ProfilesByIDsFn        func(ctx context.Context, ids []string) ([]*models.Profile, error)
	UpsertProfileFn        func(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

func (f *fakeStore) Posts(ctx context.Context, category string, limit int) ([]*models.Post, error) {
	if f.PostsFn == nil {
		return nil, nil
	}
	return f.PostsFn(ctx, category, limit)
}

func (f *fakeStore) PostByID(ctx context.Context, id string) (*models.Post, error) {
	if f.PostByIDFn == nil {
		return nil, NoRecordFound
	}
	return f.PostByIDFn(ctx, id)
}

func (f *fakeStore) PostsByUser(ctx context.Context, userID string) ([]*models.Post, error) {
	if f.PostsByUserFn == nil {
		return nil, nil
	}
	return f.PostsByUserFn(ctx, userID)
}

func (f *fakeStore) InsertPost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if f.InsertPostFn == nil {
		return post, nil
	}
	return f.InsertPostFn(ctx, post)
}

func (f *fakeStore) UpdatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if f.UpdatePostFn == nil {
		return post, nil
	}
	return f.UpdatePostFn(ctx, post)
}

func (f *fakeStore) DeletePost(ctx context.Context, id, userID string) (int64, error) {
	if f.DeletePostFn == nil {
		return 0, nil
	}
	return f.DeletePostFn(ctx, id, userID)
}

func (f *fakeStore) Categories(ctx context.Context) ([]string, error) {
	if f.CategoriesFn == nil {
		return nil, nil
	}
	return f.CategoriesFn(ctx)
}

func (f *fakeStore) CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	if f.CommentsByPostFn == nil {
		return nil, nil
	}
	return f.CommentsByPostFn(ctx, postID)
}

func (f *fakeStore) InsertComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if f.InsertCommentFn == nil {
		return comment, nil
	}
	return f.InsertCommentFn(ctx, comment)
}

func (f *fakeStore) DeleteCommentsByPost(ctx context.Context, postID string) (int64, error) {
	if f.DeleteCommentsByPostFn == nil {
		return 0, nil
	}
	return f.DeleteCommentsByPostFn(ctx, postID)
}

func (f *fakeStore) ProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	if f.ProfileByIDFn == nil {
		return nil, NoRecordFound
	}
	return f.ProfileByIDFn(ctx, id)
}

func (f *fakeStore) ProfilesByIDs(ctx context.Context, ids []string) ([]*models.Profile, error) {
	if f.ProfilesByIDsFn == nil {
		return []*models.Profile{}, nil
	}
	return f.ProfilesByIDsFn(ctx, ids)
}

func (f *fakeStore) UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if f.UpsertProfileFn == nil {
		return profile, nil
	}
	return f.UpsertProfileFn(ctx, profile)
}

type fakeObjects struct {
	UploadFn func(ctx context.Context, path, contentType string, body io.Reader) (string, error)
}

func (f *fakeObjects) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	if f.UploadFn == nil {
		return path, nil
	}
	return f.UploadFn(ctx, path, contentType, body)
}

func (f *fakeObjects) PublicURL(path string) string {
	return "https://objects.test/" + path
}

// fakeTx runs the function inline and records whether it reported failure,
// which stands in for a rollback.
type fakeTx struct {
	ran        bool
	rolledBack bool
}

func (f *fakeTx) DoTransactionally(ctx context.Context, fn func(ctx context.Context) error) error {
	f.ran = true
	err := fn(ctx)
	if err != nil {
		f.rolledBack = true
	}
	return err
}

func newTestCore(store Store, objects ObjectStorage, tx *fakeTx) *Core {
	if store == nil {
		store = &fakeStore{}
	}
	if objects == nil {
		objects = &fakeObjects{}
	}
	if tx == nil {
		tx = &fakeTx{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, objects, tx, logger)
}
