package config

import "errors"

var (
	// ErrNoDatabaseDSN is returned when no database connection string is
	// present in any configuration source.
	ErrNoDatabaseDSN = errors.New("no database DSN provided")

	// ErrNoServerAddress is returned when no HTTP listen address is
	// present in any configuration source.
	ErrNoServerAddress = errors.New("no server address provided")

	// ErrNoTokenSignKey is returned when no JWT signing secret is present
	// in any configuration source.
	ErrNoTokenSignKey = errors.New("no token sign key provided")
)
