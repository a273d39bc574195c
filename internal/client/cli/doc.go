// Package cli provides the interactive shouxkream command-line client.
//
// The REPL reads one command per line and calls the account service over
// gRPC. Anonymous users can sign up, log in and browse categories; after
// login the profile commands become available.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or stdin is closed.
package cli
