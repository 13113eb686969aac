package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCollaborators(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Address == "" {
		return errors.New("server.address must be set")
	}
	if c.Server.DialTimeout <= 0 {
		return errors.New("server.dial_timeout must be a positive number of seconds")
	}
	return nil
}

func (c *Config) validateCollaborators() error {
	if c.Picker.Binary == "" {
		return errors.New("picker.binary must be set")
	}
	if c.Player.Binary == "" {
		return errors.New("player.binary must be set")
	}
	if c.Quarantine.Path == "" {
		return errors.New("quarantine.path must be set")
	}
	return nil
}

func (c *Config) validateNotifications() error {
	switch c.Notifications.Backend {
	case NotifyNone, NotifyDesktop:
		return nil
	case NotifyNtfy:
		if c.Notifications.NtfyTopic == "" {
			return errors.New("notifications.ntfy_topic must be set when backend is ntfy")
		}
		return nil
	default:
		return fmt.Errorf("notifications.backend: unsupported value %q", c.Notifications.Backend)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
