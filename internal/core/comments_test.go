package core

import (
	"context"
	"strings"
	"testing"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommentContent(t *testing.T) {
	t.Run("accepts a trimmed body within the limit", func(t *testing.T) {
		assert.True(t, ValidateCommentContent("  Гарна стаття!  ").IsValid())
	})

	t.Run("rejects blank content", func(t *testing.T) {
		for _, content := range []string{"", "   ", "\n\t "} {
			v := ValidateCommentContent(content)
			assert.False(t, v.IsValid(), "content %q", content)
			assert.Contains(t, v.Errors, "content")
		}
	})

	t.Run("the limit counts characters, not bytes", func(t *testing.T) {
		// 1000 Cyrillic characters are 2000 bytes
		assert.True(t, ValidateCommentContent(strings.Repeat("ї", 1000)).IsValid())
		assert.False(t, ValidateCommentContent(strings.Repeat("ї", 1001)).IsValid())
	})

	t.Run("trailing whitespace does not count against the limit", func(t *testing.T) {
		assert.True(t, ValidateCommentContent(strings.Repeat("a", 1000)+"   ").IsValid())
	})
}

func TestSubmitComment(t *testing.T) {
	t.Run("stores the trimmed comment and joins the author", func(t *testing.T) {
		var inserted *models.Comment
		store := &fakeStore{
			InsertCommentFn: func(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
				inserted = comment
				return comment, nil
			},
			ProfileByIDFn: func(ctx context.Context, id string) (*models.Profile, error) {
				return &models.Profile{ID: id, Name: "Іван"}, nil
			},
		}

		joined, err := newTestCore(store, nil, nil).SubmitComment(context.Background(), "post-1", "  Дякую!  ", "u1")

		require.NoError(t, err)
		require.NotNil(t, inserted)
		assert.Equal(t, "Дякую!", inserted.Content)
		assert.Equal(t, "post-1", inserted.PostID)
		assert.Equal(t, "u1", inserted.UserID)
		assert.NotEmpty(t, inserted.ID)
		assert.False(t, inserted.CreatedAt.IsZero())
		require.NotNil(t, joined.Author)
		assert.Equal(t, "Іван", joined.Author.Name)
	})

	t.Run("a commenter without a profile leaves Author nil", func(t *testing.T) {
		joined, err := newTestCore(&fakeStore{}, nil, nil).SubmitComment(context.Background(), "post-1", "Дякую!", "u1")

		require.NoError(t, err)
		assert.Nil(t, joined.Author)
	})

	t.Run("an insert failure surfaces as ErrCommentNotCreated", func(t *testing.T) {
		store := &fakeStore{
			InsertCommentFn: func(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
				return nil, xerrors.New("backend down")
			},
		}

		_, err := newTestCore(store, nil, nil).SubmitComment(context.Background(), "post-1", "Дякую!", "u1")
		assert.ErrorIs(t, err, ErrCommentNotCreated)
	})

	t.Run("a nil insert result surfaces as ErrCommentNotCreated", func(t *testing.T) {
		store := &fakeStore{
			InsertCommentFn: func(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
				return nil, nil
			},
		}

		_, err := newTestCore(store, nil, nil).SubmitComment(context.Background(), "post-1", "Дякую!", "u1")
		assert.ErrorIs(t, err, ErrCommentNotCreated)
	})
}
