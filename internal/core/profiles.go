package core

import (
	"context"
	"errors"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/models"
)

// SaveProfile upserts the profile keyed by its user identifier. When the
// patch carries no avatar the previously stored one is kept, falling back
// to fallbackAvatarURL (the picture of the signed-in identity) for a first
// save. Saving twice with identical data yields the same stored row.
func (c *Core) SaveProfile(ctx context.Context, profile *models.Profile, fallbackAvatarURL string) (*models.Profile, error) {
	if profile.AvatarURL == "" {
		existing, err := c.store.ProfileByID(ctx, profile.ID)
		switch {
		case err == nil:
			profile.AvatarURL = existing.AvatarURL
		case errors.Is(err, NoRecordFound):
			profile.AvatarURL = fallbackAvatarURL
		default:
			return nil, xerrors.New(err)
		}
	}

	saved, err := c.store.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return saved, nil
}
