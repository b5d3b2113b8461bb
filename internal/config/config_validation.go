package config

// validate checks that the merged configuration is complete enough to run
// the server and applies defaults for optional fields.
//
// Required: database DSN, HTTP listen address, token signing key.
// Defaulted: token duration (1h), bcrypt cost (12).
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	if c.Server.HTTPAddress == "" {
		return ErrNoServerAddress
	}

	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = DefaultTokenDuration
	}

	if c.App.BCryptCost == 0 {
		c.App.BCryptCost = DefaultBCryptCost
	}

	return nil
}
