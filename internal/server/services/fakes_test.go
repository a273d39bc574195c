package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	"github.com/dmitrijs2005/shouxkream/internal/dbx"
	"github.com/dmitrijs2005/shouxkream/internal/logging"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	categoriesrepo "github.com/dmitrijs2005/shouxkream/internal/server/repositories/categories"
	checkoutsrepo "github.com/dmitrijs2005/shouxkream/internal/server/repositories/checkouts"
	refreshtokensrepo "github.com/dmitrijs2005/shouxkream/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/shouxkream/internal/server/repositories/users"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

// memStore backs every fake repository. Transactions are not simulated;
// tests drive them through sqlmock expectations.
type memStore struct {
	mu         sync.Mutex
	nextID     int64
	users      map[int64]models.User
	tokens     map[string]models.RefreshToken
	categories map[int64]models.Category
	checkouts  []models.Checkout

	usersErr  error
	updateErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[int64]models.User{},
		tokens:     map[string]models.RefreshToken{},
		categories: map[int64]models.Category{},
	}
}

func (m *memStore) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memStore) Users(dbx.DBTX) usersrepo.Repository          { return fakeUsers{m} }
func (m *memStore) RefreshTokens(dbx.DBTX) refreshtokensrepo.Repository {
	return fakeTokens{m}
}
func (m *memStore) Categories(dbx.DBTX) categoriesrepo.Repository { return fakeCategories{m} }
func (m *memStore) Checkouts(dbx.DBTX) checkoutsrepo.Repository   { return fakeCheckouts{m} }

func (m *memStore) userByEmail(email string) (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *memStore) tokensFor(email string) []models.RefreshToken {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.RefreshToken
	for _, t := range m.tokens {
		if t.Email == email {
			out = append(out, t)
		}
	}
	return out
}

type fakeUsers struct{ m *memStore }

func (f fakeUsers) Create(_ context.Context, u *models.User) (int64, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.usersErr != nil {
		return 0, f.m.usersErr
	}
	for _, existing := range f.m.users {
		if existing.Email == u.Email {
			return 0, common.ErrConflict
		}
	}
	f.m.nextID++
	stored := *u
	stored.ID = f.m.nextID
	f.m.users[stored.ID] = stored
	return stored.ID, nil
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.usersErr != nil {
		return nil, f.m.usersErr
	}
	for _, u := range f.m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	u, ok := f.m.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (f fakeUsers) Update(_ context.Context, u *models.User) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.updateErr != nil {
		return f.m.updateErr
	}
	if _, ok := f.m.users[u.ID]; !ok {
		return common.ErrorNotFound
	}
	for id, existing := range f.m.users {
		if id != u.ID && existing.Email == u.Email {
			return common.ErrConflict
		}
	}
	f.m.users[u.ID] = *u
	return nil
}

func (f fakeUsers) Delete(_ context.Context, id int64) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if _, ok := f.m.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.m.users, id)
	return nil
}

func (f fakeUsers) ListAddresses(_ context.Context, userID int64) ([]models.Address, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	return f.m.users[userID].Addresses, nil
}

type fakeTokens struct{ m *memStore }

func (f fakeTokens) Create(_ context.Context, t *models.RefreshToken) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	f.m.nextID++
	t.ID = f.m.nextID
	t.CreatedAt = time.Now()
	f.m.tokens[t.JTI] = *t
	return nil
}

func (f fakeTokens) FindByJTI(_ context.Context, jti string) (*models.RefreshToken, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	t, ok := f.m.tokens[jti]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (f fakeTokens) DeleteByJTI(_ context.Context, jti string) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if _, ok := f.m.tokens[jti]; !ok {
		return common.ErrorNotFound
	}
	delete(f.m.tokens, jti)
	return nil
}

func (f fakeTokens) DeleteByEmail(_ context.Context, email string) (int64, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	var n int64
	for jti, t := range f.m.tokens {
		if t.Email == email {
			delete(f.m.tokens, jti)
			n++
		}
	}
	return n, nil
}

type fakeCategories struct{ m *memStore }

func (f fakeCategories) Create(_ context.Context, name string) (int64, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	for _, c := range f.m.categories {
		if c.Name == name {
			return 0, common.ErrConflict
		}
	}
	f.m.nextID++
	f.m.categories[f.m.nextID] = models.Category{ID: f.m.nextID, Name: name}
	return f.m.nextID, nil
}

func (f fakeCategories) Get(_ context.Context, id int64) (*models.Category, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	c, ok := f.m.categories[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (f fakeCategories) List(context.Context) ([]models.Category, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	out := make([]models.Category, 0, len(f.m.categories))
	for _, c := range f.m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeCategories) Update(_ context.Context, c *models.Category) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if _, ok := f.m.categories[c.ID]; !ok {
		return common.ErrorNotFound
	}
	f.m.categories[c.ID] = *c
	return nil
}

func (f fakeCategories) Delete(_ context.Context, id int64) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if _, ok := f.m.categories[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.m.categories, id)
	return nil
}

type fakeCheckouts struct{ m *memStore }

func (f fakeCheckouts) ListByUserID(_ context.Context, userID int64) ([]models.Checkout, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	out := []models.Checkout{}
	for _, c := range f.m.checkouts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeDenylist struct {
	revoked map[string]time.Time
	err     error
}

func (d *fakeDenylist) Revoke(_ context.Context, jti string, until time.Time) error {
	if d.err != nil {
		return d.err
	}
	if d.revoked == nil {
		d.revoked = map[string]time.Time{}
	}
	d.revoked[jti] = until
	return nil
}
