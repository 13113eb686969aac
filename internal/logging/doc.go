// Package logging builds the slog loggers used across mpdselect. Logs go to
// stderr so stdout stays reserved for user-facing selection output.
package logging
