package config

import (
	"os"
	"sync"
	"time"
)

type AuthConfig struct {
	SessionTTL    time.Duration
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		authConfig = &AuthConfig{
			SessionTTL:    envDuration("SESSION_TTL", 12*time.Hour),
			AdminName:     envStr("ADMIN_NAME", "Administrator"),
			AdminEmail:    os.Getenv("ADMIN_EMAIL"),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		}
	})
	return authConfig
}
