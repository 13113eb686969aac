package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mpdselect/internal/mpd"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the MPD server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *mpd.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}

				keys := make([]string, 0, len(status))
				for key := range status {
					keys = append(keys, key)
				}
				sort.Strings(keys)

				if plain || !stdoutIsTerminal() {
					for _, key := range keys {
						fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, status[key])
					}
					return nil
				}

				rows := make([][]string, 0, len(keys))
				for _, key := range keys {
					rows = append(rows, []string{key, status[key]})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Value"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Force plain key=value output")
	return cmd
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
