package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	isolationLevels = []string{"read_committed", "repeatable_read", "serializable"}
	unsetPolicies   = []string{"promote", "allow_orphan"}
	logFormats      = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// All violations are reported together.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range (got %d)", c.Server.Port))
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns))
	}
	if !oneOf(c.Database.TxIsolation, isolationLevels) {
		errs = append(errs, fmt.Errorf("database.tx_isolation must be one of %v (got %q)", isolationLevels, c.Database.TxIsolation))
	}
	if !oneOf(c.Primary.UnsetPolicy, unsetPolicies) {
		errs = append(errs, fmt.Errorf("primary.unset_policy must be one of %v (got %q)", unsetPolicies, c.Primary.UnsetPolicy))
	}
	if err := c.Chat.validate(); err != nil {
		errs = append(errs, fmt.Errorf("chat: %w", err))
	}
	if c.Redis.Enabled() && strings.TrimSpace(c.Redis.Channel) == "" {
		errs = append(errs, errors.New("redis.channel is required when redis.url is set"))
	}
	if c.Cleanup.RetentionDays < 1 {
		errs = append(errs, fmt.Errorf("cleanup.retention_days must be >= 1 (got %d)", c.Cleanup.RetentionDays))
	}
	if !oneOf(c.Log.Format, logFormats) {
		errs = append(errs, fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format))
	}

	return errors.Join(errs...)
}

func (c *ChatConfig) validate() error {
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be > 0 (got %s)", c.HeartbeatInterval)
	}
	if c.IdleTimeout <= c.HeartbeatInterval {
		return fmt.Errorf("idle_timeout (%s) must exceed heartbeat_interval (%s)", c.IdleTimeout, c.HeartbeatInterval)
	}
	if c.ReapInterval <= 0 {
		return fmt.Errorf("reap_interval must be > 0 (got %s)", c.ReapInterval)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer_size must be >= 1 (got %d)", c.BufferSize)
	}
	if c.PublishPerMinute < 0 {
		return fmt.Errorf("publish_per_minute must be >= 0 (got %d)", c.PublishPerMinute)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	return slices.Contains(allowed, strings.ToLower(strings.TrimSpace(v)))
}
