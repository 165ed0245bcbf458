package backend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/core"
	"github.com/mishaello/re-blog/internal/utils/databaseutils"
	"github.com/mishaello/re-blog/models"
)

const postColumns = "id, title, content, category, image_url, user_id, created_at, updated_at"

func scanPost(rows *sql.Rows) (*models.Post, error) {
	var post models.Post
	if err := rows.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Category,
		&post.ImageURL,
		&post.UserID,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return &post, nil
}

func (p *Postgres) Posts(ctx context.Context, category string, limit int) ([]*models.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1
	`, postColumns)
	args := []any{limit}

	if category != "" {
		query = fmt.Sprintf(`
			SELECT %s
			FROM posts
			WHERE category = $1
			ORDER BY created_at DESC
			LIMIT $2
		`, postColumns)
		args = []any{category, limit}
	}

	posts, err := databaseutils.ExecuteQuery(p.sqlTemplate, ctx, query, scanPost, args...)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return posts, nil
}

func (p *Postgres) PostByID(ctx context.Context, id string) (*models.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts
		WHERE id = $1
	`, postColumns)

	post, err := databaseutils.ExecuteSingleQuery(p.sqlTemplate, ctx, query, scanPost, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, xerrors.New(core.NoRecordFound)
		}
		return nil, xerrors.New(err)
	}

	return post, nil
}

func (p *Postgres) PostsByUser(ctx context.Context, userID string) ([]*models.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, postColumns)

	posts, err := databaseutils.ExecuteQuery(p.sqlTemplate, ctx, query, scanPost, userID)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return posts, nil
}

func (p *Postgres) InsertPost(ctx context.Context, post *models.Post) (*models.Post, error) {
	query := fmt.Sprintf(`
		INSERT INTO posts (id, title, content, category, image_url, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, postColumns)

	inserted, err := databaseutils.ExecuteSingleQuery(p.sqlTemplate, ctx, query, scanPost,
		post.ID, post.Title, post.Content, post.Category, post.ImageURL, post.UserID, post.CreatedAt)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return inserted, nil
}

func (p *Postgres) UpdatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	query := fmt.Sprintf(`
		UPDATE posts
		SET title = $1, content = $2, category = $3, image_url = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
		RETURNING %s
	`, postColumns)

	updated, err := databaseutils.ExecuteSingleQuery(p.sqlTemplate, ctx, query, scanPost,
		post.Title, post.Content, post.Category, post.ImageURL, post.UpdatedAt, post.ID, post.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, xerrors.New(core.NoRecordFound)
		}
		return nil, xerrors.New(err)
	}

	return updated, nil
}

func (p *Postgres) DeletePost(ctx context.Context, id, userID string) (int64, error) {
	query := `
		DELETE FROM posts
		WHERE id = $1 AND user_id = $2
	`

	affected, err := databaseutils.ExecuteUpdate(p.sqlTemplate, ctx, query, id, userID)
	if err != nil {
		return 0, xerrors.New(err)
	}

	return affected, nil
}

func (p *Postgres) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM posts
		WHERE category IS NOT NULL AND category <> ''
		ORDER BY category
	`

	categories, err := databaseutils.ExecuteQuery(p.sqlTemplate, ctx, query, func(rows *sql.Rows) (string, error) {
		var category string
		if err := rows.Scan(&category); err != nil {
			return "", xerrors.New(err)
		}
		return category, nil
	})
	if err != nil {
		return nil, xerrors.New(err)
	}

	return categories, nil
}
