package backend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/core"
	"github.com/mishaello/re-blog/internal/utils/databaseutils"
	"github.com/mishaello/re-blog/internal/utils/stringutils"
	"github.com/mishaello/re-blog/models"
)

func scanProfile(rows *sql.Rows) (*models.Profile, error) {
	var profile models.Profile
	if err := rows.Scan(
		&profile.ID,
		&profile.Name,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Location,
		&profile.Website,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return &profile, nil
}

func (p *Postgres) ProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, name, avatar_url, bio, location, website
		FROM profiles
		WHERE id = $1
	`

	profile, err := databaseutils.ExecuteSingleQuery(p.sqlTemplate, ctx, query, scanProfile, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, xerrors.New(core.NoRecordFound)
		}
		return nil, xerrors.New(err)
	}

	return profile, nil
}

func (p *Postgres) ProfilesByIDs(ctx context.Context, ids []string) ([]*models.Profile, error) {
	if len(ids) == 0 {
		return []*models.Profile{}, nil
	}

	placeholders, args := stringutils.INClause(ids)
	query := fmt.Sprintf(`
		SELECT id, name, avatar_url, bio, location, website
		FROM profiles
		WHERE id IN (%s)
	`, strings.Join(placeholders, ", "))

	profiles, err := databaseutils.ExecuteQuery(p.sqlTemplate, ctx, query, scanProfile, args...)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return profiles, nil
}

func (p *Postgres) UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (id, name, avatar_url, bio, location, website)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    avatar_url = EXCLUDED.avatar_url,
		    bio = EXCLUDED.bio,
		    location = EXCLUDED.location,
		    website = EXCLUDED.website
		RETURNING id, name, avatar_url, bio, location, website
	`

	saved, err := databaseutils.ExecuteSingleQuery(p.sqlTemplate, ctx, query, scanProfile,
		profile.ID, profile.Name, profile.AvatarURL, profile.Bio, profile.Location, profile.Website)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return saved, nil
}
