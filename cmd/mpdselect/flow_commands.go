package main

import (
	"context"

	"github.com/spf13/cobra"

	"mpdselect/internal/selector"
)

func newArtistCommand(ctx *commandContext, flags *flowFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "artist",
		Short: "Select artist, then album, then song",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSelector(cmd, func(runCtx context.Context, sel *selector.Selector) error {
				return sel.RunArtist(runCtx, flags.preselect)
			})
		},
	}
}

func newAlbumCommand(ctx *commandContext, flags *flowFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "album",
		Short: "Select album, then song",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlbumFlow(ctx, cmd, flags)
		},
	}
}

func runAlbumFlow(ctx *commandContext, cmd *cobra.Command, flags *flowFlags) error {
	return ctx.withSelector(cmd, func(runCtx context.Context, sel *selector.Selector) error {
		return sel.RunAlbum(runCtx, flags.artist, flags.album, flags.preselect)
	})
}

func newSongCommand(ctx *commandContext, flags *flowFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "song",
		Short: "Select a song from the whole catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSelector(cmd, func(runCtx context.Context, sel *selector.Selector) error {
				return sel.RunAllSongs(runCtx, flags.preselect)
			})
		},
	}
}

func newRandomCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Play a random album without prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSelector(cmd, func(runCtx context.Context, sel *selector.Selector) error {
				return sel.RunRandomAlbum(runCtx)
			})
		},
	}
}

func newQuarantineCommand(ctx *commandContext, flags *flowFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "quarantine",
		Short: "Select an album from the quarantine list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSelector(cmd, func(runCtx context.Context, sel *selector.Selector) error {
				return sel.RunQuarantine(runCtx, flags.preselect)
			})
		},
	}
}

func newRandomQuarantineCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "random-quarantine",
		Short: "Play a random quarantine album without prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSelector(cmd, func(runCtx context.Context, sel *selector.Selector) error {
				return sel.RunRandomQuarantine(runCtx)
			})
		},
	}
}

func newPlaylistCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "playlist",
		Short: "Show the current playlist and jump to the selected song",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSelector(cmd, func(runCtx context.Context, sel *selector.Selector) error {
				return sel.RunPlaylist(runCtx)
			})
		},
	}
}
