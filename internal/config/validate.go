package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Upstream.validate(); err != nil {
		return fmt.Errorf("upstream: %w", err)
	}

	if err := validateBaseURL(c.Dictionary.BaseURL); err != nil {
		return fmt.Errorf("dictionary.base_url: %w", err)
	}
	if err := validateBaseURL(c.Translation.BaseURL); err != nil {
		return fmt.Errorf("translation.base_url: %w", err)
	}

	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	return nil
}

func (u *UpstreamConfig) validate() error {
	if u.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", u.Timeout)
	}
	if u.BreakerEnabled {
		if u.BreakerFailures == 0 {
			return fmt.Errorf("breaker_failures must be > 0 when the breaker is enabled")
		}
		if u.BreakerCooldown <= 0 {
			return fmt.Errorf("breaker_cooldown must be > 0 (got %v)", u.BreakerCooldown)
		}
	}
	return nil
}

func (l *LookupConfig) validate() error {
	if l.HistoryCapacity < 1 {
		return fmt.Errorf("history_capacity must be >= 1 (got %d)", l.HistoryCapacity)
	}
	if _, err := language.Parse(strings.TrimSpace(l.DefaultSource)); err != nil {
		return fmt.Errorf("default_source %q: %w", l.DefaultSource, err)
	}
	if _, err := language.Parse(strings.TrimSpace(l.DefaultTarget)); err != nil {
		return fmt.Errorf("default_target %q: %w", l.DefaultTarget, err)
	}
	return nil
}

func validateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	return nil
}
