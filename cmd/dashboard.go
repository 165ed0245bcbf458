package main

import (
	"net/http"
	"time"

	"github.com/mishaello/re-blog/internal/core"
	"github.com/mishaello/re-blog/internal/utils/functional"
	"github.com/mishaello/re-blog/internal/validator"
	"github.com/mishaello/re-blog/models"
)

func (app *application) getDashboard(w http.ResponseWriter, r *http.Request) {
	ident, _ := app.currentIdentity(r)

	dashboard, err := app.core.LoadDashboard(r.Context(), ident.ID)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	category := app.readString(r.URL.Query(), "category", core.CategoryAll)
	byYear := core.FilterPostsByCategory(dashboard.PostsByYear, category)

	now := time.Now()
	postsByYear := make(map[string][]*postResponse, len(byYear))
	for year, posts := range byYear {
		postsByYear[year] = functional.Map(posts, func(p *models.Post) *postResponse {
			return toPostResponse(&models.PostWithAuthor{Post: *p}, now)
		})
	}

	years := functional.Filter(dashboard.Years, func(year string) bool {
		return len(postsByYear[year]) > 0
	})

	response := envelope{
		"profile":     toAuthorResponse(dashboard.Profile),
		"postsByYear": postsByYear,
		"years":       years,
		"categories":  dashboard.Categories,
		"stats":       dashboard.Stats,
	}

	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) saveProfile(w http.ResponseWriter, r *http.Request) {
	type ProfilePayload struct {
		Name      string  `json:"name"`
		AvatarURL string  `json:"avatarUrl"`
		Bio       *string `json:"bio"`
		Location  *string `json:"location"`
		Website   *string `json:"website"`
	}

	type SaveProfileRequest struct {
		ProfilePayload `json:"profile"`
	}

	var requestPayload SaveProfileRequest
	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(requestPayload.Name, "name", "must be provided")
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	ident, _ := app.currentIdentity(r)

	// A first save without an avatar falls back to the identity's picture.
	var fallbackAvatar string
	if ident.AvatarURL != nil {
		fallbackAvatar = *ident.AvatarURL
	}

	profile, err := app.core.SaveProfile(r.Context(), &models.Profile{
		ID:        ident.ID,
		Name:      requestPayload.Name,
		AvatarURL: requestPayload.AvatarURL,
		Bio:       requestPayload.Bio,
		Location:  requestPayload.Location,
		Website:   requestPayload.Website,
	}, fallbackAvatar)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	response := envelope{
		"profile": toAuthorResponse(profile),
	}
	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
