package backend

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/identity"
	"github.com/mishaello/re-blog/internal/utils/databaseutils"
)

func scanIdentity(rows *sql.Rows) (*identity.Identity, error) {
	var ident identity.Identity
	var subject sql.NullString
	if err := rows.Scan(
		&ident.ID,
		&ident.Provider,
		&subject,
		&ident.Email,
		&ident.Name,
		&ident.AvatarURL,
		&ident.CreatedAt,
	); err != nil {
		return nil, xerrors.New(err)
	}
	ident.Subject = subject.String
	return &ident, nil
}

func (p *Postgres) InsertIdentity(ctx context.Context, ident *identity.Identity) (*identity.Identity, error) {
	query := `
		INSERT INTO identities (id, provider, subject, email, name, avatar_url, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		RETURNING id, provider, subject, email, name, avatar_url, created_at
	`

	inserted, err := databaseutils.ExecuteSingleQuery(p.sqlTemplate, ctx, query, scanIdentity,
		ident.ID, ident.Provider, ident.Subject, ident.Email, ident.Name, ident.AvatarURL, ident.CreatedAt)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return inserted, nil
}

func (p *Postgres) IdentityByID(ctx context.Context, id string) (*identity.Identity, error) {
	query := `
		SELECT id, provider, subject, email, name, avatar_url, created_at
		FROM identities
		WHERE id = $1
	`

	ident, err := databaseutils.ExecuteSingleQuery(p.sqlTemplate, ctx, query, scanIdentity, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, xerrors.New(identity.ErrNoIdentity)
		}
		return nil, xerrors.New(err)
	}

	return ident, nil
}

func (p *Postgres) IdentityBySubject(ctx context.Context, subject string) (*identity.Identity, error) {
	query := `
		SELECT id, provider, subject, email, name, avatar_url, created_at
		FROM identities
		WHERE subject = $1
	`

	ident, err := databaseutils.ExecuteSingleQuery(p.sqlTemplate, ctx, query, scanIdentity, subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, xerrors.New(identity.ErrNoIdentity)
		}
		return nil, xerrors.New(err)
	}

	return ident, nil
}
