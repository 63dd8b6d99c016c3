package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	authpkg "github.com/ecoideias/ecoideias-backend/internal/auth"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

type roleChecker interface {
	HasRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (bool, error)
}

type ctxKey int

const (
	identityKey ctxKey = iota
	authFailedKey
	roleUnknownKey
)

// identity lets outer middleware observe who the request was authenticated as.
type identity struct {
	userID string
}

func withIdentity(ctx context.Context, id *identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func recordIdentity(ctx context.Context, userID uuid.UUID) {
	if id, ok := ctx.Value(identityKey).(*identity); ok {
		id.userID = userID.String()
	}
}

// AuthFailed reports whether the request carried a credential that did not validate.
func AuthFailed(ctx context.Context) bool {
	v, _ := ctx.Value(authFailedKey).(bool)
	return v
}

// RoleUnknown reports whether the has_role lookup failed for this request.
// The request then carries the user role and admin guards answer 500.
func RoleUnknown(ctx context.Context) bool {
	v, _ := ctx.Value(roleUnknownKey).(bool)
	return v
}

// Auth resolves the session from the Authorization header or the session
// cookie. Requests without a valid session pass through anonymously; the
// guards below decide whether that is acceptable. The role is re-read
// through has_role on every request so revoked admins lose access at once.
func Auth(validator tokenValidator, roles roleChecker, cookieName string, logger *slog.Logger) Middleware {
	log := logger.With("component", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := authpkg.TokenFromRequest(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			userID, _, err := validator.ValidateAccessToken(token)
			if err != nil {
				next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, authFailedKey, true)))
				return
			}

			role := domain.UserRoleUser
			isAdmin, err := roles.HasRole(ctx, userID, domain.UserRoleAdmin)
			switch {
			case err != nil:
				log.ErrorContext(ctx, "role lookup failed",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()))
				ctx = context.WithValue(ctx, roleUnknownKey, true)
			case isAdmin:
				role = domain.UserRoleAdmin
			}

			recordIdentity(ctx, userID)
			ctx = ctxutil.WithUserID(ctx, userID)
			ctx = ctxutil.WithUserRole(ctx, role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				msg := "Authentication required"
				if AuthFailed(r.Context()) {
					msg = "Invalid authentication"
				}
				writeError(w, http.StatusUnauthorized, msg)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
// A failed role lookup yields 500 so an outage is not reported as a denial.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return RequireAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleUnknown(r.Context()) {
				writeError(w, http.StatusInternalServerError, "Erro interno do servidor")
				return
			}
			if !ctxutil.IsAdminCtx(r.Context()) {
				writeError(w, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
