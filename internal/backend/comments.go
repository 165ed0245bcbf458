package backend

import (
	"context"
	"database/sql"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/utils/databaseutils"
	"github.com/mishaello/re-blog/models"
)

func scanComment(rows *sql.Rows) (*models.Comment, error) {
	var comment models.Comment
	if err := rows.Scan(
		&comment.ID,
		&comment.Content,
		&comment.PostID,
		&comment.UserID,
		&comment.CreatedAt,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return &comment, nil
}

func (p *Postgres) CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	query := `
		SELECT id, content, post_id, user_id, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC
	`

	comments, err := databaseutils.ExecuteQuery(p.sqlTemplate, ctx, query, scanComment, postID)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return comments, nil
}

func (p *Postgres) InsertComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (id, content, post_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, content, post_id, user_id, created_at
	`

	inserted, err := databaseutils.ExecuteSingleQuery(p.sqlTemplate, ctx, query, scanComment,
		comment.ID, comment.Content, comment.PostID, comment.UserID, comment.CreatedAt)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return inserted, nil
}

func (p *Postgres) DeleteCommentsByPost(ctx context.Context, postID string) (int64, error) {
	query := `
		DELETE FROM comments
		WHERE post_id = $1
	`

	affected, err := databaseutils.ExecuteUpdate(p.sqlTemplate, ctx, query, postID)
	if err != nil {
		return 0, xerrors.New(err)
	}

	return affected, nil
}
