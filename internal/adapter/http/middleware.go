package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"crowdoo/internal/core/domain"
)

type ctxKey string

const ctxKeyPrincipal ctxKey = "principal"

// requireAuth resolves the bearer token into a principal and stores it in
// the request context. Requests without a valid token get 401.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		p, err := h.svc.Auth.Authenticate(r.Context(), token)
		if err != nil {
			h.writeDomainError(w, r, "authenticate", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
	})
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func withPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

// principalFrom returns the anonymous principal when none was stored.
func principalFrom(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(ctxKeyPrincipal).(domain.Principal)
	return p
}
