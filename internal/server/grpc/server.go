package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/shouxkream/internal/logging"
	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/dmitrijs2005/shouxkream/internal/server/observability"
	"github.com/dmitrijs2005/shouxkream/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the account API the handlers need. *services.UserService implements it.
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

type CategoryLister interface {
	List(ctx context.Context) ([]models.Category, error)
}

// Authenticator resolves an access token into a Principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Principal, error)
}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address    string
	users      UserService
	categories CategoryLister
	authn      Authenticator
	metrics    *observability.Metrics
	logger     logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, cs CategoryLister, authn Authenticator, m *observability.Metrics) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		categories: cs,
		authn:      authn,
		metrics:    m,
	}
}

// newServer builds the grpc.Server with the account and health services registered.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metrics.UnaryServerInterceptor(), s.accessTokenInterceptor))

	pb.RegisterAccountServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
