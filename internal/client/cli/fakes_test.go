package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/shouxkream/internal/client/client"
	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
)

type fakeClient struct {
	loggedIn bool

	signupReq *pb.SignupRequest
	signupErr error

	loginEmail string
	loginPass  []byte
	loginErr   error

	logoutCalled bool
	logoutErr    error

	user      *pb.UserResponse
	updateReq *pb.UpdateProfileRequest
	updateErr error

	deleteCalled bool

	addresses  []pb.Address
	categories []pb.Category
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error   { return nil }
func (f *fakeClient) LoggedIn() bool { return f.loggedIn }

func (f *fakeClient) Signup(_ context.Context, req *pb.SignupRequest) (int64, error) {
	f.signupReq = req
	return 5, f.signupErr
}

func (f *fakeClient) Login(_ context.Context, email string, password []byte) error {
	f.loginEmail, f.loginPass = email, append([]byte(nil), password...)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}

func (f *fakeClient) Logout(context.Context) error {
	f.logoutCalled = true
	f.loggedIn = false
	return f.logoutErr
}

func (f *fakeClient) Me(context.Context) (*pb.UserResponse, error) {
	if !f.loggedIn {
		return nil, client.ErrNotLoggedIn
	}
	return f.user, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, req *pb.UpdateProfileRequest) (*pb.UserResponse, error) {
	f.updateReq = req
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u := *f.user
	if req.Email != "" {
		u.Email = req.Email
	}
	return &u, nil
}

func (f *fakeClient) DeleteAccount(context.Context) error {
	f.deleteCalled = true
	f.loggedIn = false
	return nil
}

func (f *fakeClient) Addresses(context.Context) ([]pb.Address, error) { return f.addresses, nil }
func (f *fakeClient) Categories(context.Context) ([]pb.Category, error) {
	return f.categories, nil
}

// stubInputs answers text prompts from answers in order and password prompts
// from passwords in order.
func stubInputs(t *testing.T, answers []string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(string, io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
}

func newTestApp(f *fakeClient) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{client: f, reader: bufio.NewReader(strings.NewReader("")), out: &out}, &out
}
