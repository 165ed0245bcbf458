package main

import (
	"fmt"
	"net/http"

	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/identity"
	"github.com/mishaello/re-blog/internal/web"
)

// authenticate resolves the session identity once per request and stashes it
// in the request context for the handlers downstream. Requests without a
// session pass through untouched.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ident, ok := app.identity.Current(r.Context()); ok {
			r = web.AddValueToContext(r, web.IdentityCtxKey, ident)
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) requireIdentity(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := app.currentIdentity(r); !ok {
			app.authenticationRequiredResponse(w, r, xerrors.New("authentication required"))
			return
		}
		next(w, r)
	}
}

// requirePublisher lets only signed-in, non-anonymous identities through.
// Anonymous visitors may read and comment but never publish.
func (app *application) requirePublisher(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := app.currentIdentity(r)
		if !ok {
			app.authenticationRequiredResponse(w, r, xerrors.New("authentication required"))
			return
		}
		if ident.IsAnonymous() {
			app.forbiddenResponse(w, r, xerrors.New("anonymous identities cannot publish"))
			return
		}
		next(w, r)
	}
}

func (app *application) currentIdentity(r *http.Request) (*identity.Identity, bool) {
	return web.GetValueFromContext[*identity.Identity](r, web.IdentityCtxKey)
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.internalErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
