// Package auth gates HTTP routes on a bearer JWT carrying fine-grained
// permission claims. Disclosed deposit data needs readDeposit, disclosed
// loan data needs readLoan.
package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"creditlines/pkg/requestcontext"
)

// Permission names carried in the "permissions" claim.
const (
	PermissionReadDeposit   = "readDeposit"
	PermissionReadLoan      = "readLoan"
	PermissionManageDeposit = "manageDeposit"
	PermissionManageLoan    = "manageLoan"
)

// User is the authenticated principal stored in the request context.
type User struct {
	Subject     string
	Permissions []string
}

// Can reports whether the user holds a permission.
func (u *User) Can(permission string) bool {
	return u != nil && slices.Contains(u.Permissions, permission)
}

// Validator parses and verifies bearer tokens.
type Validator interface {
	ValidateToken(token string) (*User, error)
}

type claims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// JWTValidator verifies HMAC-signed tokens.
type JWTValidator struct {
	signingKey []byte
}

// NewJWTValidator builds a validator for the shared signing key.
func NewJWTValidator(signingKey []byte) *JWTValidator {
	return &JWTValidator{signingKey: signingKey}
}

// ValidateToken verifies signature and expiry and extracts the principal.
func (v *JWTValidator) ValidateToken(token string) (*User, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return &User{
		Subject:     c.Subject,
		Permissions: c.Permissions,
	}, nil
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireAuth rejects requests without a valid bearer token and stores the
// principal in the request context.
func RequireAuth(validator Validator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			user, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithUser(ctx, &requestcontext.UserInfo{
				Subject:     user.Subject,
				Permissions: user.Permissions,
			})))
		})
	}
}

// RequirePermission rejects authenticated requests whose principal lacks the
// permission. Must run after RequireAuth.
func RequirePermission(permission string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			user := requestcontext.User(ctx)
			if user == nil || !slices.Contains(user.Permissions, permission) {
				logger.WarnContext(ctx, "forbidden - missing permission",
					"permission", permission,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Missing required permission")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
