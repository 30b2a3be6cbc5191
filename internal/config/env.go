package config

import "os"

// Environment variable names for overrides.
const (
	EnvConfig   = "MEGA_GO_CONFIG"
	EnvEmail    = "MEGA_GO_EMAIL"
	EnvPassword = "MEGA_GO_PASSWORD"
)

// EnvOverrides holds values derived from environment variables.
type EnvOverrides struct {
	ConfigPath string // MEGA_GO_CONFIG: override config file path
	Email      string // MEGA_GO_EMAIL: login email override
	Password   string // MEGA_GO_PASSWORD: login password (never stored in the file)
}

// ReadEnvOverrides reads environment variables and returns any overrides
// found. Callers apply the relevant fields; the Config itself is not
// modified here.
func ReadEnvOverrides() EnvOverrides {
	return EnvOverrides{
		ConfigPath: os.Getenv(EnvConfig),
		Email:      os.Getenv(EnvEmail),
		Password:   os.Getenv(EnvPassword),
	}
}
