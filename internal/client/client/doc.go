// Package client talks to the shouxkream account service over gRPC.
//
// GRPCClient keeps the access and refresh tokens issued at login, attaches
// the access token to every call through a unary interceptor and, when the
// server reports an expired access token, rotates the pair once and retries.
//
// gRPC status codes are mapped to sentinel errors that callers can match
// with errors.Is: ErrUnavailable and ErrUnauthorized. Other failures keep
// the server's status message.
package client
