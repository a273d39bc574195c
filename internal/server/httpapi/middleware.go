package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/secure"
)

func (h *handler) middlewareStack() []func(http.Handler) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "no-referrer",
	})

	return []func(http.Handler) http.Handler{
		middleware.RealIP,
		middleware.RequestID,
		h.requestLogger,
		middleware.Recoverer,
		middleware.Timeout(h.RequestTimeout),
		secureMiddleware.Handler,
		h.Metrics.Middleware,
	}
}

func (h *handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// requireAuth resolves the bearer token into a Principal stored on the
// request context.
func (h *handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.ExtractBearer(r.Header.Get(common.AuthorizationHeaderName))
		if token == "" {
			writeErrorCode(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}

		p, err := h.Authn.Authenticate(r.Context(), token)
		if err != nil {
			h.writeError(r.Context(), w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
	})
}

func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			writeErrorCode(w, http.StatusUnauthorized, "unauthorized", "unauthenticated")
			return
		}
		if !p.IsAdmin() {
			writeErrorCode(w, http.StatusForbidden, "forbidden", common.ErrForbidden.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}
