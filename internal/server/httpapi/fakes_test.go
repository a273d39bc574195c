package httpapi

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	"github.com/dmitrijs2005/shouxkream/internal/logging"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/dmitrijs2005/shouxkream/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeUsers struct {
	signupErr error
	gotSignup services.SignupRequest

	tokens   *services.TokenPair
	loginErr error

	refreshErr error
	gotRefresh string

	user      *models.User
	userErr   error
	gotUpdate services.UpdateProfileRequest
	updateErr error

	deleted   []auth.Principal
	loggedOut []auth.Principal

	addresses []services.AddressDTO
}

func (f *fakeUsers) Signup(_ context.Context, req services.SignupRequest) (int64, error) {
	f.gotSignup = req
	if f.signupErr != nil {
		return 0, f.signupErr
	}
	return 11, nil
}

func (f *fakeUsers) Login(_ context.Context, req services.LoginRequest) (*services.TokenPair, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.ErrInvalidCredentials
	}
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.tokens, nil
}

func (f *fakeUsers) Refresh(_ context.Context, token string) (*services.TokenPair, error) {
	f.gotRefresh = token
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.tokens, nil
}

func (f *fakeUsers) Logout(_ context.Context, p auth.Principal) error {
	f.loggedOut = append(f.loggedOut, p)
	return nil
}

func (f *fakeUsers) GetCurrentUser(context.Context, auth.Principal) (*models.User, error) {
	return f.user, f.userErr
}

func (f *fakeUsers) UpdateProfile(_ context.Context, _ auth.Principal, req services.UpdateProfileRequest) (*models.User, error) {
	f.gotUpdate = req
	if req.Password == "" {
		return nil, common.ErrInvalidPassword
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.user, nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, p auth.Principal) error {
	f.deleted = append(f.deleted, p)
	return nil
}

func (f *fakeUsers) GetUserAddresses(context.Context, string) ([]services.AddressDTO, error) {
	return f.addresses, nil
}

type fakeCategories struct {
	items  map[int64]string
	nextID int64
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{items: map[int64]string{}}
}

func (f *fakeCategories) Create(_ context.Context, name string) (*models.Category, error) {
	for _, n := range f.items {
		if n == name {
			return nil, common.ErrConflict
		}
	}
	f.nextID++
	f.items[f.nextID] = name
	return &models.Category{ID: f.nextID, Name: name}, nil
}

func (f *fakeCategories) Update(_ context.Context, id int64, name string) (*models.Category, error) {
	if _, ok := f.items[id]; !ok {
		return nil, common.ErrorNotFound
	}
	f.items[id] = name
	return &models.Category{ID: id, Name: name}, nil
}

func (f *fakeCategories) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCategories) Get(_ context.Context, id int64) (*models.Category, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Category{ID: id, Name: n}, nil
}

func (f *fakeCategories) List(context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for id, n := range f.items {
		out = append(out, models.Category{ID: id, Name: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeCheckouts struct {
	list []models.Checkout
}

func (f *fakeCheckouts) ListForUser(context.Context, auth.Principal) ([]models.Checkout, error) {
	return f.list, nil
}

// fakeAuthn knows two tokens: "user-token" and "admin-token".
type fakeAuthn struct{}

func (fakeAuthn) Authenticate(_ context.Context, token string) (auth.Principal, error) {
	switch token {
	case "user-token":
		return auth.Principal{Email: "a@x.com", AccountID: 1, Role: models.RoleUser, TokenID: "u-jti"}, nil
	case "admin-token":
		return auth.Principal{Email: "root@x.com", AccountID: 2, Role: models.RoleAdmin, TokenID: "a-jti"}, nil
	case "revoked-token":
		return auth.Principal{}, common.ErrTokenRevoked
	default:
		return auth.Principal{}, common.ErrInvalidToken
	}
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }
