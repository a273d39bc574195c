package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/shouxkream/internal/logging"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/dmitrijs2005/shouxkream/internal/server/observability"
	"github.com/dmitrijs2005/shouxkream/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
)

// UserService is implemented by *services.UserService.
type UserService interface {
	Signup(ctx context.Context, req services.SignupRequest) (int64, error)
	Login(ctx context.Context, req services.LoginRequest) (*services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, p auth.Principal) error
	GetCurrentUser(ctx context.Context, p auth.Principal) (*models.User, error)
	UpdateProfile(ctx context.Context, p auth.Principal, req services.UpdateProfileRequest) (*models.User, error)
	DeleteUser(ctx context.Context, p auth.Principal) error
	GetUserAddresses(ctx context.Context, email string) ([]services.AddressDTO, error)
}

// CategoryService is implemented by *services.CategoryService.
type CategoryService interface {
	Create(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id int64, name string) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
}

type CheckoutService interface {
	ListForUser(ctx context.Context, p auth.Principal) ([]models.Checkout, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Principal, error)
}

// Pinger checks a backing store for /healthz. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps are the collaborators of the REST API.
type Deps struct {
	Users      UserService
	Categories CategoryService
	Checkouts  CheckoutService
	Authn      Authenticator
	Metrics    *observability.Metrics
	Health     Pinger
	Logger     logging.Logger

	// AuthRateLimit caps login and signup attempts per client IP per minute.
	AuthRateLimit  int
	RequestTimeout time.Duration
}

type handler struct {
	Deps
	logger   logging.Logger
	validate *validator.Validate
}

// NewRouter builds the chi router with the full middleware stack.
func NewRouter(d Deps) http.Handler {
	if d.AuthRateLimit <= 0 {
		d.AuthRateLimit = 10
	}
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 30 * time.Second
	}

	h := &handler{Deps: d, logger: d.Logger.With("module", "http_api"), validate: newValidator()}

	r := chi.NewRouter()
	for _, mw := range h.middlewareStack() {
		r.Use(mw)
	}

	r.Get("/healthz", h.health)
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	authLimiter := httprate.Limit(d.AuthRateLimit, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeErrorCode(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
		}),
	)

	r.Route("/api", func(r chi.Router) {
		r.With(authLimiter).Post("/users", h.signup)
		r.With(authLimiter).Post("/login", h.login)
		r.Post("/token/refresh", h.refresh)

		r.Get("/categories", h.listCategories)
		r.Get("/categories/{id}", h.getCategory)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Post("/logout", h.logout)
			r.Get("/users/me", h.me)
			r.Patch("/users/me", h.updateProfile)
			r.Delete("/users/me", h.deleteMe)
			r.Get("/users/me/addresses", h.addresses)
			r.Get("/checkouts", h.checkouts)

			r.Route("/admin/categories", func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", h.createCategory)
				r.Put("/{id}", h.updateCategory)
				r.Delete("/{id}", h.deleteCategory)
			})
		})
	})

	return r
}
