package main

import (
	"errors"
	"net/http"

	"github.com/mishaello/re-blog/internal/core"
)

const maxUploadMemory = 8 << 20

// uploadImage validates and stores a post image, responding with its public
// URL. Validation order is fixed: file presence, MIME type, size, then
// session; the handler is deliberately not behind requireIdentity so the
// earlier checks run for everyone.
func (app *application) uploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "The request does not carry a valid multipart body.",
			ErrorStack:   err,
		})
		return
	}

	upload := &core.Upload{}
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		upload.Filename = header.Filename
		upload.ContentType = header.Header.Get("Content-Type")
		upload.Size = header.Size
		upload.Body = file
	}

	var userID string
	if ident, ok := app.currentIdentity(r); ok {
		userID = ident.ID
	}

	url, err := app.core.AttachImage(r.Context(), userID, upload)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNoFileSelected),
			errors.Is(err, core.ErrNotAnImage),
			errors.Is(err, core.ErrImageTooLarge):
			app.badRequestResponse(w, r, &AppError{ErrorMessage: err.Error(), ErrorStack: err})
		case errors.Is(err, core.ErrSignInRequired):
			app.authenticationRequiredResponse(w, r, err)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusCreated, envelope{"imageUrl": url}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
