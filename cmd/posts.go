package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mishaello/re-blog/internal/core"
	"github.com/mishaello/re-blog/internal/format"
	"github.com/mishaello/re-blog/internal/utils/functional"
	"github.com/mishaello/re-blog/models"
)

type authorResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL string  `json:"avatarUrl"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
	Website   *string `json:"website,omitempty"`
}

type postResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	Category      *string         `json:"category"`
	CategoryStyle string          `json:"categoryStyle,omitempty"`
	ImageURL      *string         `json:"imageUrl"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
	PublishedAgo  string          `json:"publishedAgo"`
	Author        *authorResponse `json:"author"`
}

func toAuthorResponse(profile *models.Profile) *authorResponse {
	if profile == nil {
		return nil
	}
	return &authorResponse{
		ID:        profile.ID,
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
		Bio:       profile.Bio,
		Location:  profile.Location,
		Website:   profile.Website,
	}
}

func toPostResponse(post *models.PostWithAuthor, now time.Time) *postResponse {
	response := &postResponse{
		ID:           post.ID,
		Title:        post.Title,
		Content:      post.Content,
		Category:     post.Category,
		ImageURL:     post.ImageURL,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
		PublishedAgo: format.RelativeDate(post.CreatedAt, now),
		Author:       toAuthorResponse(post.Author),
	}
	if post.Category != nil {
		response.CategoryStyle = format.CategoryColor(*post.Category)
	}
	return response
}

func (app *application) getFeed(w http.ResponseWriter, r *http.Request) {
	category := app.readString(r.URL.Query(), "category", core.CategoryAll)

	feed := app.core.GetFeed(r.Context(), category)

	now := time.Now()
	response := envelope{
		"posts": functional.Map(feed.Posts, func(p *models.PostWithAuthor) *postResponse {
			return toPostResponse(p, now)
		}),
		"categories":          feed.Categories,
		"suggestedCategories": format.SuggestedCategories,
	}

	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getPostDetail(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	id := params.ByName("id")

	detail, err := app.core.GetPostDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.NoRecordFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	now := time.Now()
	response := envelope{
		"post": toPostResponse(detail.Post, now),
		"comments": functional.Map(detail.Comments, func(c *models.CommentWithAuthor) *commentResponse {
			return toCommentResponse(c, now)
		}),
	}

	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

type postInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
}

func (app *application) createPost(w http.ResponseWriter, r *http.Request) {
	type CreatePostRequest struct {
		postInput `json:"post"`
	}

	var requestPayload CreatePostRequest
	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := core.ValidatePost(requestPayload.Title, requestPayload.Content)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	ident, _ := app.currentIdentity(r)
	post, err := app.core.CreatePost(r.Context(),
		requestPayload.Title, requestPayload.Content, requestPayload.Category, requestPayload.ImageURL, ident.ID)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	response := envelope{
		"post": toPostResponse(&models.PostWithAuthor{Post: *post}, time.Now()),
	}
	if err := app.writeJSON(w, http.StatusCreated, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updatePost(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	id := params.ByName("id")

	type UpdatePostRequest struct {
		postInput `json:"post"`
	}

	var requestPayload UpdatePostRequest
	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := core.ValidatePost(requestPayload.Title, requestPayload.Content)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	ident, _ := app.currentIdentity(r)
	post, err := app.core.UpdatePost(r.Context(),
		id, requestPayload.Title, requestPayload.Content, requestPayload.Category, requestPayload.ImageURL, ident.ID)
	if err != nil {
		if errors.Is(err, core.NoRecordFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	response := envelope{
		"post": toPostResponse(&models.PostWithAuthor{Post: *post}, time.Now()),
	}
	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deletePost(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	id := params.ByName("id")

	ident, _ := app.currentIdentity(r)
	if err := app.core.DeletePost(r.Context(), id, ident.ID); err != nil {
		if errors.Is(err, core.ErrNotPostOwner) {
			app.forbiddenResponse(w, r, err)
			return
		}
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"deleted": id}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
