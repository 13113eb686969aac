package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"mpdselect/internal/config"
	"mpdselect/internal/logging"
	"mpdselect/internal/mpd"
	"mpdselect/internal/notifications"
	"mpdselect/internal/picker"
	"mpdselect/internal/player"
	"mpdselect/internal/selector"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withClient dials MPD, runs fn, and closes the connection.
func (c *commandContext) withClient(fn func(*mpd.Client) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	client, err := mpd.Dial(cfg.Server.Address, time.Duration(cfg.Server.DialTimeout)*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}

// withSelector wires a full selection pipeline around one MPD connection and
// runs fn with it.
func (c *commandContext) withSelector(cmd *cobra.Command, fn func(context.Context, *selector.Selector) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	return c.withClient(func(client *mpd.Client) error {
		sel := selector.New(
			client,
			picker.NewRofi(
				picker.WithBinary(cfg.Picker.Binary),
				picker.WithAlternateKey(cfg.Picker.AlternateKey),
				picker.WithExtraArgs(cfg.Picker.ExtraArgs),
			),
			player.NewMPC(
				player.WithBinary(cfg.Player.Binary),
				player.WithLockFile(cfg.Player.LockFile),
			),
			notifications.NewService(cfg),
			selector.WithOutput(cmd.OutOrStdout()),
			selector.WithLogger(logger),
			selector.WithQuarantinePath(cfg.Quarantine.Path),
		)
		return fn(cmd.Context(), sel)
	})
}
