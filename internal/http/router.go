// Package httpapi wires the disclosure HTTP surface: routing, request
// identity, authentication and the metrics endpoint.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"creditlines/internal/disclosure/handler"
	"creditlines/pkg/platform/middleware/auth"
	"creditlines/pkg/requestcontext"
)

// NewRouter assembles the full route tree. Read routes demand the read
// permission matching the position type; write routes demand the manage
// permission.
func NewRouter(disclosure *handler.Handler, validator auth.Validator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(validator, logger))
		disclosure.Routes(r, permissionForType(logger))
	})

	return r
}

// requestID assigns each request a correlation ID, honoring one supplied by
// an upstream proxy.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
	})
}

// permissionForType resolves the required permission from the {type} path
// segment and the HTTP verb. Unknown types fall through to the handler,
// which rejects them with a clearer error.
func permissionForType(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var read, manage string
			switch chi.URLParam(r, "type") {
			case "deposit":
				read, manage = auth.PermissionReadDeposit, auth.PermissionManageDeposit
			case "loan":
				read, manage = auth.PermissionReadLoan, auth.PermissionManageLoan
			default:
				next.ServeHTTP(w, r)
				return
			}

			required := manage
			if r.Method == http.MethodGet {
				required = read
			}
			auth.RequirePermission(required, logger)(next).ServeHTTP(w, r)
		})
	}
}
