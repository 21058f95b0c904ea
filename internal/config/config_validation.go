package config

import "time"

// Fallback values applied after all configuration sources have been merged.
// They mirror the defaults of the original deployment environment.
const (
	defaultHTTPAddress    = ":8000"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "task-management-api"
	defaultTokenDuration  = 30 * time.Minute
	defaultDBHost         = "localhost"
	defaultDBPort         = 5433
	defaultDBName         = "task_management"
	defaultDBUser         = "task_api_user"
	defaultDBPassword     = "task_api_password"
)

// applyDefaults fills in fallback values for fields that no configuration
// source provided. It runs after the merge and before validation.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}

	if cfg.DB.DSN == "" {
		if cfg.DB.Host == "" {
			cfg.DB.Host = defaultDBHost
		}
		if cfg.DB.Port == 0 {
			cfg.DB.Port = defaultDBPort
		}
		if cfg.DB.Name == "" {
			cfg.DB.Name = defaultDBName
		}
		if cfg.DB.User == "" {
			cfg.DB.User = defaultDBUser
		}
		if cfg.DB.Password == "" {
			cfg.DB.Password = defaultDBPassword
		}
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.GetDSN() == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// GetDSN exposes the effective database connection string of the merged
// configuration.
func (cfg *StructuredConfig) GetDSN() string {
	return cfg.DB.GetDSN()
}
