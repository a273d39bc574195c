package grpc

import (
	"context"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/dmitrijs2005/shouxkream/internal/server/services"
)

type fakeUsers struct {
	signupID  int64
	signupErr error
	gotSignup services.SignupRequest

	loginResp *services.TokenPair
	loginErr  error

	refreshResp *services.TokenPair
	refreshErr  error

	logoutErr error
	loggedOut []auth.Principal

	user    *models.User
	userErr error

	gotUpdate services.UpdateProfileRequest
	updateErr error

	deleteErr error
	deleted   []auth.Principal

	addresses    []services.AddressDTO
	addressesErr error
	gotEmail     string
}

func (f *fakeUsers) Signup(_ context.Context, req services.SignupRequest) (int64, error) {
	f.gotSignup = req
	return f.signupID, f.signupErr
}

func (f *fakeUsers) Login(context.Context, services.LoginRequest) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeUsers) Refresh(context.Context, string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeUsers) Logout(_ context.Context, p auth.Principal) error {
	f.loggedOut = append(f.loggedOut, p)
	return f.logoutErr
}

func (f *fakeUsers) GetCurrentUser(context.Context, auth.Principal) (*models.User, error) {
	return f.user, f.userErr
}

func (f *fakeUsers) UpdateProfile(_ context.Context, _ auth.Principal, req services.UpdateProfileRequest) (*models.User, error) {
	f.gotUpdate = req
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.user, nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, p auth.Principal) error {
	f.deleted = append(f.deleted, p)
	return f.deleteErr
}

func (f *fakeUsers) GetUserAddresses(_ context.Context, email string) ([]services.AddressDTO, error) {
	f.gotEmail = email
	return f.addresses, f.addressesErr
}

type fakeCategories struct {
	list []models.Category
	err  error
}

func (f *fakeCategories) List(context.Context) ([]models.Category, error) {
	return f.list, f.err
}

// fakeAuthn accepts exactly one token string.
type fakeAuthn struct {
	token string
	p     auth.Principal
	err   error
}

func (f *fakeAuthn) Authenticate(_ context.Context, token string) (auth.Principal, error) {
	if f.err != nil {
		return auth.Principal{}, f.err
	}
	if token != f.token {
		return auth.Principal{}, common.ErrInvalidToken
	}
	return f.p, nil
}
