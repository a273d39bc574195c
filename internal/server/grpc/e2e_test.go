package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/dmitrijs2005/shouxkream/internal/server/observability"
	"github.com/dmitrijs2005/shouxkream/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// startBufconn serves s in-process and returns a connected client conn.
func startBufconn(t *testing.T, s *GRPCServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})
	return conn
}

func TestAccountService_OverTheWire(t *testing.T) {
	users := &fakeUsers{
		signupID:  5,
		loginResp: &services.TokenPair{AccessToken: "good", RefreshToken: "R"},
		user:      &models.User{ID: 5, Email: "a@x.com", Name: "Alice", Role: models.RoleAdmin},
	}
	authn := &fakeAuthn{token: "good", p: auth.Principal{Email: "a@x.com", AccountID: 5, Role: models.RoleAdmin}}
	s := NewGRPCServer("bufnet", nopLogger{}, users, &fakeCategories{}, authn, observability.NewMetrics())

	conn := startBufconn(t, s)
	client := pb.NewAccountServiceClient(conn)
	ctx := context.Background()

	signup, err := client.Signup(ctx, &pb.SignupRequest{Email: "a@x.com", Password: "pw", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), signup.Id)
	assert.Equal(t, "Alice", users.gotSignup.Name)

	tokens, err := client.Login(ctx, &pb.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "good", tokens.AccessToken)

	_, err = client.GetCurrentUser(ctx, &pb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := metadata.AppendToOutgoingContext(ctx, "access_token", tokens.AccessToken)
	me, err := client.GetCurrentUser(authed, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", me.Role)

	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.Status)
}
