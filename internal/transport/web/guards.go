// Package web serves the single-page client and applies the page-level
// access rules before index.html is returned.
package web

import (
	"net/http"
	"net/url"

	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

// Guard wraps a page handler with an access rule.
type Guard func(next http.Handler) http.Handler

// ProtectedRoute sends visitors without a session to the login page,
// remembering where they were going.
func ProtectedRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Redirect(w, r, "/?from="+url.QueryEscape(r.URL.Path), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminRoute sends signed-in non-admins to their dashboard.
func AdminRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserRoute keeps admins out of the contributor pages.
func UserRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctxutil.IsAdminCtx(r.Context()) {
			http.Redirect(w, r, "/admin", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func chain(h http.Handler, guards ...Guard) http.Handler {
	for i := len(guards) - 1; i >= 0; i-- {
		h = guards[i](h)
	}
	return h
}
