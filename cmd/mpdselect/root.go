package main

import (
	"github.com/spf13/cobra"
)

// flowFlags are the pre-selection flags shared by every selection flow.
type flowFlags struct {
	artist    string
	album     string
	preselect int
}

func newRootCommand() *cobra.Command {
	var configFlag string
	flags := &flowFlags{}

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "mpdselect",
		Short:         "Pick music interactively and hand it to MPD",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running without a subcommand selects an album across the whole
		// catalog, matching the most common invocation.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlbumFlow(ctx, cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.artist, "artist", "", "Pre-select artist")
	rootCmd.PersistentFlags().StringVar(&flags.album, "album", "", "Pre-select album (requires --artist)")
	rootCmd.PersistentFlags().IntVar(&flags.preselect, "preselect", 0, "Pre-select song index")

	rootCmd.AddCommand(newArtistCommand(ctx, flags))
	rootCmd.AddCommand(newAlbumCommand(ctx, flags))
	rootCmd.AddCommand(newSongCommand(ctx, flags))
	rootCmd.AddCommand(newRandomCommand(ctx))
	rootCmd.AddCommand(newQuarantineCommand(ctx, flags))
	rootCmd.AddCommand(newRandomQuarantineCommand(ctx))
	rootCmd.AddCommand(newPlaylistCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newTestNotifyCommand(ctx))

	return rootCmd
}
