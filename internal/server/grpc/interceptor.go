package grpc

import (
	"context"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods need a valid access token.
var protectedMethods = map[string]bool{
	pb.AccountService_Logout_FullMethodName:           true,
	pb.AccountService_GetCurrentUser_FullMethodName:   true,
	pb.AccountService_UpdateProfile_FullMethodName:    true,
	pb.AccountService_DeleteUser_FullMethodName:       true,
	pb.AccountService_GetUserAddresses_FullMethodName: true,
}

func accessTokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
		return values[0]
	}
	if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
		return auth.ExtractBearer(values[0])
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := accessTokenFromMetadata(ctx)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	p, err := s.authn.Authenticate(ctx, accessToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return handler(auth.WithPrincipal(ctx, p), req)
}

// principal returns the identity stored by accessTokenInterceptor.
func principal(ctx context.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return auth.Principal{}, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return p, nil
}
