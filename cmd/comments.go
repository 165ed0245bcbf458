package main

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mishaello/re-blog/internal/core"
	"github.com/mishaello/re-blog/internal/format"
	"github.com/mishaello/re-blog/models"
)

type commentResponse struct {
	ID           string          `json:"id"`
	Content      string          `json:"content"`
	PostID       string          `json:"postId"`
	CreatedAt    time.Time       `json:"createdAt"`
	PublishedAgo string          `json:"publishedAgo"`
	Author       *authorResponse `json:"author"`
}

func toCommentResponse(comment *models.CommentWithAuthor, now time.Time) *commentResponse {
	return &commentResponse{
		ID:           comment.ID,
		Content:      comment.Content,
		PostID:       comment.PostID,
		CreatedAt:    comment.CreatedAt,
		PublishedAgo: format.RelativeDate(comment.CreatedAt, now),
		Author:       toAuthorResponse(comment.Author),
	}
}

// createComment accepts comments from anyone: a visitor without a session
// gets an anonymous identity created on the spot before the insert.
func (app *application) createComment(w http.ResponseWriter, r *http.Request) {
	type CreateCommentPayload struct {
		Content string `json:"content"`
	}

	type CreateCommentRequest struct {
		CreateCommentPayload `json:"comment"`
	}

	var createCommentRequest CreateCommentRequest
	if err := app.readJSON(w, r, &createCommentRequest); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := core.ValidateCommentContent(createCommentRequest.Content)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	params := httprouter.ParamsFromContext(r.Context())
	postID := params.ByName("id")

	ident, err := app.identity.Ensure(r.Context())
	if err != nil {
		app.errorResponse(w, r, http.StatusServiceUnavailable, &AppError{
			ErrorStack:   err,
			ErrorMessage: "Could not create an identity for the visitor.",
		})
		return
	}

	comment, err := app.core.SubmitComment(r.Context(), postID, createCommentRequest.Content, ident.ID)
	if err != nil {
		app.errorResponse(w, r, http.StatusInternalServerError, &AppError{
			ErrorStack:   err,
			ErrorMessage: "The comment could not be created.",
		})
		return
	}

	response := envelope{
		"comment": toCommentResponse(comment, time.Now()),
	}
	if err := app.writeJSON(w, http.StatusCreated, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
