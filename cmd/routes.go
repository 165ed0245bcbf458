package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)

	// Public pages
	router.HandlerFunc(http.MethodGet, "/api/feed", app.getFeed)
	router.HandlerFunc(http.MethodGet, "/api/posts/:id", app.getPostDetail)
	router.HandlerFunc(http.MethodPost, "/api/posts/:id/comments", app.createComment)
	router.HandlerFunc(http.MethodGet, "/api/me", app.getMe)

	// Sign-in lifecycle
	router.HandlerFunc(http.MethodGet, "/api/auth/google", app.googleSignIn)
	router.HandlerFunc(http.MethodGet, "/auth/callback", app.authCallback)
	router.HandlerFunc(http.MethodPost, "/api/auth/signout", app.signOut)

	// Publishing requires a non-anonymous identity
	router.HandlerFunc(http.MethodPost, "/api/posts", app.requirePublisher(app.createPost))
	router.HandlerFunc(http.MethodPut, "/api/posts/:id", app.requirePublisher(app.updatePost))
	router.HandlerFunc(http.MethodDelete, "/api/posts/:id", app.requireIdentity(app.deletePost))

	// The upload handler orders its own validation, session check included.
	router.HandlerFunc(http.MethodPost, "/api/uploads", app.uploadImage)

	// Dashboard
	router.HandlerFunc(http.MethodGet, "/api/dashboard", app.requireIdentity(app.getDashboard))
	router.HandlerFunc(http.MethodPut, "/api/profile", app.requireIdentity(app.saveProfile))

	return app.identity.Sessions.LoadAndSave(app.recoverPanic(app.authenticate(router)))
}
