package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "shouxkream.v1.AccountService"

const (
	AccountService_Signup_FullMethodName           = "/shouxkream.v1.AccountService/Signup"
	AccountService_Login_FullMethodName            = "/shouxkream.v1.AccountService/Login"
	AccountService_Refresh_FullMethodName          = "/shouxkream.v1.AccountService/Refresh"
	AccountService_Logout_FullMethodName           = "/shouxkream.v1.AccountService/Logout"
	AccountService_GetCurrentUser_FullMethodName   = "/shouxkream.v1.AccountService/GetCurrentUser"
	AccountService_UpdateProfile_FullMethodName    = "/shouxkream.v1.AccountService/UpdateProfile"
	AccountService_DeleteUser_FullMethodName       = "/shouxkream.v1.AccountService/DeleteUser"
	AccountService_GetUserAddresses_FullMethodName = "/shouxkream.v1.AccountService/GetUserAddresses"
	AccountService_ListCategories_FullMethodName   = "/shouxkream.v1.AccountService/ListCategories"
)

// AccountServiceServer is the server API for AccountService.
type AccountServiceServer interface {
	Signup(context.Context, *SignupRequest) (*SignupResponse, error)
	Login(context.Context, *LoginRequest) (*TokenResponse, error)
	Refresh(context.Context, *RefreshRequest) (*TokenResponse, error)
	Logout(context.Context, *Empty) (*Empty, error)
	GetCurrentUser(context.Context, *Empty) (*UserResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UserResponse, error)
	DeleteUser(context.Context, *Empty) (*Empty, error)
	GetUserAddresses(context.Context, *Empty) (*AddressesResponse, error)
	ListCategories(context.Context, *Empty) (*CategoriesResponse, error)
}

// UnimplementedAccountServiceServer can be embedded to have forward compatible implementations.
type UnimplementedAccountServiceServer struct{}

func (UnimplementedAccountServiceServer) Signup(context.Context, *SignupRequest) (*SignupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Signup not implemented")
}
func (UnimplementedAccountServiceServer) Login(context.Context, *LoginRequest) (*TokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAccountServiceServer) Refresh(context.Context, *RefreshRequest) (*TokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Refresh not implemented")
}
func (UnimplementedAccountServiceServer) Logout(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedAccountServiceServer) GetCurrentUser(context.Context, *Empty) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentUser not implemented")
}
func (UnimplementedAccountServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
}
func (UnimplementedAccountServiceServer) DeleteUser(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteUser not implemented")
}
func (UnimplementedAccountServiceServer) GetUserAddresses(context.Context, *Empty) (*AddressesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserAddresses not implemented")
}
func (UnimplementedAccountServiceServer) ListCategories(context.Context, *Empty) (*CategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

func unary[Req any, Resp any](method string, call func(AccountServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Signup", Handler: unary(AccountService_Signup_FullMethodName, AccountServiceServer.Signup)},
		{MethodName: "Login", Handler: unary(AccountService_Login_FullMethodName, AccountServiceServer.Login)},
		{MethodName: "Refresh", Handler: unary(AccountService_Refresh_FullMethodName, AccountServiceServer.Refresh)},
		{MethodName: "Logout", Handler: unary(AccountService_Logout_FullMethodName, AccountServiceServer.Logout)},
		{MethodName: "GetCurrentUser", Handler: unary(AccountService_GetCurrentUser_FullMethodName, AccountServiceServer.GetCurrentUser)},
		{MethodName: "UpdateProfile", Handler: unary(AccountService_UpdateProfile_FullMethodName, AccountServiceServer.UpdateProfile)},
		{MethodName: "DeleteUser", Handler: unary(AccountService_DeleteUser_FullMethodName, AccountServiceServer.DeleteUser)},
		{MethodName: "GetUserAddresses", Handler: unary(AccountService_GetUserAddresses_FullMethodName, AccountServiceServer.GetUserAddresses)},
		{MethodName: "ListCategories", Handler: unary(AccountService_ListCategories_FullMethodName, AccountServiceServer.ListCategories)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shouxkream/v1/account.proto",
}

// AccountServiceClient is the client API for AccountService.
type AccountServiceClient interface {
	Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	GetCurrentUser(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*UserResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UserResponse, error)
	DeleteUser(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	GetUserAddresses(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AddressesResponse, error)
	ListCategories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CategoriesResponse, error)
}

type accountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) AccountServiceClient {
	return &accountServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountServiceClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error) {
	return invoke[SignupResponse](ctx, c.cc, AccountService_Signup_FullMethodName, in, opts)
}

func (c *accountServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, AccountService_Login_FullMethodName, in, opts)
}

func (c *accountServiceClient) Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, AccountService_Refresh_FullMethodName, in, opts)
}

func (c *accountServiceClient) Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, AccountService_Logout_FullMethodName, in, opts)
}

func (c *accountServiceClient) GetCurrentUser(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, AccountService_GetCurrentUser_FullMethodName, in, opts)
}

func (c *accountServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, AccountService_UpdateProfile_FullMethodName, in, opts)
}

func (c *accountServiceClient) DeleteUser(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, AccountService_DeleteUser_FullMethodName, in, opts)
}

func (c *accountServiceClient) GetUserAddresses(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AddressesResponse, error) {
	return invoke[AddressesResponse](ctx, c.cc, AccountService_GetUserAddresses_FullMethodName, in, opts)
}

func (c *accountServiceClient) ListCategories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CategoriesResponse, error) {
	return invoke[CategoriesResponse](ctx, c.cc, AccountService_ListCategories_FullMethodName, in, opts)
}
