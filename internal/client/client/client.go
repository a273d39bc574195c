package client

import (
	"context"

	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
)

// Client is the account API as seen by the CLI. Tokens returned by Login are
// kept by the implementation and attached to later calls.
type Client interface {
	Close() error
	Signup(ctx context.Context, req *pb.SignupRequest) (int64, error)
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*pb.UserResponse, error)
	UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UserResponse, error)
	DeleteAccount(ctx context.Context) error
	Addresses(ctx context.Context) ([]pb.Address, error)
	Categories(ctx context.Context) ([]pb.Category, error)
	LoggedIn() bool
}
