package main

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mdobak/go-xerrors"
)

const sessionKeyOAuthState = "oauth_state"

// googleSignIn kicks off the Google OAuth flow. The random state is kept in
// the session so the callback can reject forged redirects.
func (app *application) googleSignIn(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	app.identity.Sessions.Put(r.Context(), sessionKeyOAuthState, state)

	http.Redirect(w, r, app.identity.AuthURL(state), http.StatusFound)
}

// authCallback completes the OAuth flow. Whatever happens, the visitor ends
// up back on the site; failures are logged rather than shown as API errors.
func (app *application) authCallback(w http.ResponseWriter, r *http.Request) {
	defer http.Redirect(w, r, app.config.SiteURL, http.StatusFound)

	state := r.URL.Query().Get("state")
	expected := app.identity.Sessions.PopString(r.Context(), sessionKeyOAuthState)
	if state == "" || state != expected {
		app.logger.Error("oauth callback state mismatch", "request_url", r.URL.String())
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		app.logger.Error("oauth callback carries no code", "request_url", r.URL.String())
		return
	}

	ident, err := app.identity.ExchangeCode(r.Context(), code)
	if err != nil {
		app.logger.Error("exchanging oauth code failed", "stack", xerrors.Sprint(err))
		return
	}

	app.logger.Info("identity signed in", "identity_id", ident.ID, "provider", ident.Provider)
}

func (app *application) signOut(w http.ResponseWriter, r *http.Request) {
	if err := app.identity.SignOut(r.Context()); err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"signedOut": true}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

// getMe reports the session identity, or null when the visitor has none.
func (app *application) getMe(w http.ResponseWriter, r *http.Request) {
	response := envelope{"identity": nil}
	if ident, ok := app.currentIdentity(r); ok {
		response["identity"] = ident
	}

	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
