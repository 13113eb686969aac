// Package config loads and validates the mpdselect TOML configuration.
package config
