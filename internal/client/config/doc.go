// Package config loads runtime configuration for the shouxkream CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config or $SHOUX_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the server's gRPC endpoint
//	-t int      per-request timeout (seconds)
//
// # JSON schema
//
// Durations may be strings like "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s"
//	}
package config
