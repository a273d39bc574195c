package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable, e.g. SHOUX_DATABASE_DSN.
const envPrefix = "SHOUX"

type envConfig struct {
	EndpointAddrGRPC             string        `envconfig:"GRPC_ADDR"`
	EndpointAddrHTTP             string        `envconfig:"HTTP_ADDR"`
	DatabaseDSN                  string        `envconfig:"DATABASE_DSN"`
	SecretKey                    string        `envconfig:"SECRET_KEY"`
	AccessTokenValidityDuration  time.Duration `envconfig:"ACCESS_TOKEN_TTL"`
	RefreshTokenValidityDuration time.Duration `envconfig:"REFRESH_TOKEN_TTL"`
	BcryptCost                   int           `envconfig:"BCRYPT_COST"`
	RedisAddr                    string        `envconfig:"REDIS_ADDR"`
	LogLevel                     string        `envconfig:"LOG_LEVEL"`
}

// parseEnv overlays SHOUX_* environment variables. Unset variables keep
// the current value; malformed values panic like a bad config file does.
func parseEnv(config *Config) {
	var e envConfig
	if err := envconfig.Process(envPrefix, &e); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, e.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.SecretKey, e.SecretKey)
	setString(&config.RedisAddr, e.RedisAddr)
	setString(&config.LogLevel, e.LogLevel)
	if e.AccessTokenValidityDuration > 0 {
		config.AccessTokenValidityDuration = e.AccessTokenValidityDuration
	}
	if e.RefreshTokenValidityDuration > 0 {
		config.RefreshTokenValidityDuration = e.RefreshTokenValidityDuration
	}
	if e.BcryptCost > 0 {
		config.BcryptCost = e.BcryptCost
	}
}
