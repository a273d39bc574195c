package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	dialOptions []grpc.DialOption
	conn        *grpc.ClientConn
	client      pb.AccountServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	accessToken, refreshToken := s.tokens()
	if accessToken != "" {
		ctx = withAccessToken(ctx, accessToken)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil || method == pb.AccountService_Refresh_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refreshToken == "" {
		return err
	}

	resp, rerr := s.client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: refreshToken})
	if rerr != nil {
		return err
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewAccountClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOptions...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAccountServiceClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) LoggedIn() bool {
	access, _ := s.tokens()
	return access != ""
}

func (s *GRPCClient) Signup(ctx context.Context, req *pb.SignupRequest) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Signup(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Id, nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// Logout revokes the session on the server and forgets the local tokens
// even when the call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Logout(ctx, &pb.Empty{})
	s.setTokens("", "")
	return s.mapError(err)
}

func (s *GRPCClient) Me(ctx context.Context) (*pb.UserResponse, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetCurrentUser(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UserResponse, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) DeleteAccount(ctx context.Context) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.DeleteUser(ctx, &pb.Empty{}); err != nil {
		return s.mapError(err)
	}
	s.setTokens("", "")
	return nil
}

func (s *GRPCClient) Addresses(ctx context.Context) ([]pb.Address, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetUserAddresses(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Addresses, nil
}

func (s *GRPCClient) Categories(ctx context.Context) ([]pb.Category, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListCategories(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Categories, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %s", st.Message())
	}
}
