package config

import "strings"

// normalize trims free-form fields, lowercases enumerations, and expands
// filesystem paths. It runs before Validate so validation sees final values.
func (c *Config) normalize() error {
	c.Server.Address = strings.TrimSpace(c.Server.Address)
	c.Picker.Binary = strings.TrimSpace(c.Picker.Binary)
	c.Picker.AlternateKey = strings.TrimSpace(c.Picker.AlternateKey)
	c.Player.Binary = strings.TrimSpace(c.Player.Binary)
	c.Notifications.Backend = strings.ToLower(strings.TrimSpace(c.Notifications.Backend))
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if path := strings.TrimSpace(c.Quarantine.Path); path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return err
		}
		c.Quarantine.Path = expanded
	}
	if path := strings.TrimSpace(c.Player.LockFile); path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return err
		}
		c.Player.LockFile = expanded
	} else {
		c.Player.LockFile = ""
	}
	return nil
}
