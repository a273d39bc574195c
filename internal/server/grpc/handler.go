package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/shouxkream/internal/proto"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/dmitrijs2005/shouxkream/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.SignupResponse, error) {
	s.logger.Info(ctx, "Signup request")

	id, err := s.users.Signup(ctx, services.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Nickname: req.Nickname,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Signed up", "user_id", id)
	return &pb.SignupResponse{Id: id}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {
	tokens, err := s.users.Login(ctx, services.LoginRequest{Email: req.Email, Password: req.Password})
	s.metrics.AuthEvent("login", err)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}
	tokens, err := s.users.Refresh(ctx, req.RefreshToken)
	s.metrics.AuthEvent("refresh", err)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	err = s.users.Logout(ctx, p)
	s.metrics.AuthEvent("logout", err)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetCurrentUser(ctx context.Context, _ *pb.Empty) (*pb.UserResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetCurrentUser(ctx, p)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return userResponse(u), nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UserResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.UpdateProfile(ctx, p, services.UpdateProfileRequest{
		Password:    req.Password,
		NewPassword: req.NewPassword,
		Email:       req.Email,
		Name:        req.Name,
		Nickname:    req.Nickname,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return userResponse(u), nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.DeleteUser(ctx, p); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Account deleted", "user_id", p.AccountID)
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetUserAddresses(ctx context.Context, _ *pb.Empty) (*pb.AddressesResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.users.GetUserAddresses(ctx, p.Email)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &pb.AddressesResponse{Addresses: make([]pb.Address, 0, len(list))}
	for _, a := range list {
		out.Addresses = append(out.Addresses, pb.Address(a))
	}
	return out, nil
}

func (s *GRPCServer) ListCategories(ctx context.Context, _ *pb.Empty) (*pb.CategoriesResponse, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &pb.CategoriesResponse{Categories: make([]pb.Category, 0, len(list))}
	for _, c := range list {
		out.Categories = append(out.Categories, pb.Category{Id: c.ID, Name: c.Name})
	}
	return out, nil
}

func tokenResponse(t *services.TokenPair) *pb.TokenResponse {
	return &pb.TokenResponse{
		AccessToken:      t.AccessToken,
		RefreshToken:     t.RefreshToken,
		AccessExpiresAt:  t.AccessExpiresAt,
		RefreshExpiresAt: t.RefreshExpiresAt,
	}
}

func userResponse(u *models.User) *pb.UserResponse {
	return &pb.UserResponse{
		Id:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Nickname:  u.Nickname,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
