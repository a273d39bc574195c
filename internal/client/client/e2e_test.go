package client

import (
	"context"
	"net"
	"testing"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// accountServer accepts "A2" as the only live access token and treats "A1"
// as expired.
type accountServer struct {
	pb.UnimplementedAccountServiceServer
	refreshed int
}

func (s *accountServer) Login(_ context.Context, in *pb.LoginRequest) (*pb.TokenResponse, error) {
	if in.Password != "pw" {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	}
	return &pb.TokenResponse{AccessToken: "A1", RefreshToken: "R1"}, nil
}

func (s *accountServer) Refresh(_ context.Context, in *pb.RefreshRequest) (*pb.TokenResponse, error) {
	if in.RefreshToken != "R1" {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}
	s.refreshed++
	return &pb.TokenResponse{AccessToken: "A2", RefreshToken: "R2"}, nil
}

func (s *accountServer) GetCurrentUser(ctx context.Context, _ *pb.Empty) (*pb.UserResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	switch tok := md.Get(common.AccessTokenHeaderName); {
	case len(tok) == 0:
		return nil, status.Error(codes.Unauthenticated, "missing token")
	case tok[0] == "A1":
		return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	case tok[0] == "A2":
		return &pb.UserResponse{Id: 1, Email: "a@x.com", Role: "USER"}, nil
	default:
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}
}

func (s *accountServer) ListCategories(context.Context, *pb.Empty) (*pb.CategoriesResponse, error) {
	return &pb.CategoriesResponse{Categories: []pb.Category{{Id: 1, Name: "shoes"}}}, nil
}

func startBufServer(t *testing.T, srv pb.AccountServiceServer) *GRPCClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	pb.RegisterAccountServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	c := &GRPCClient{
		endpointURL: "passthrough:///bufnet",
		dialOptions: []grpc.DialOption{
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
		},
	}
	require.NoError(t, c.InitGRPCClient())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGRPCClient_EndToEndRefresh(t *testing.T) {
	srv := &accountServer{}
	c := startBufServer(t, srv)
	ctx := context.Background()

	cats, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []pb.Category{{Id: 1, Name: "shoes"}}, cats)

	require.ErrorIs(t, c.Login(ctx, "a@x.com", []byte("nope")), ErrUnauthorized)
	require.NoError(t, c.Login(ctx, "a@x.com", []byte("pw")))

	u, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, 1, srv.refreshed)

	access, refresh := c.tokens()
	assert.Equal(t, "A2", access)
	assert.Equal(t, "R2", refresh)
}
