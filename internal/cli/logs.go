package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/logtail"
)

func newLogsCmd(g *globalOptions) *cobra.Command {
	var (
		lines int
		level string
		grep  string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of the roster log file",
		Long: `Print the last lines of the roster log. Fetches, failures with their request
IDs and rejected column resizes are logged there while the table runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var minLevel slog.Level
			if err := minLevel.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
				return flagError("level", level, err, "roster logs --level warn")
			}

			cfg, err := config.Load(g.configPath)
			if err != nil {
				return NewError("Could not read config").WithMessage(err.Error()).Wrap(err)
			}

			all, err := logtail.Read(cfg.LogFile, 0)
			if err != nil {
				return NewError("Could not read log file").
					WithMessage(cfg.LogFile).
					Wrap(err)
			}
			if all == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "no log yet at %s\n", cfg.LogFile)
				return nil
			}

			matched := logtail.Filter(all, minLevel, grep)
			if lines > 0 && len(matched) > lines {
				matched = matched[len(matched)-lines:]
			}
			out := cmd.OutOrStdout()
			for _, line := range matched {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&lines, "lines", "n", 50, "number of lines to show (0 for all)")
	flags.StringVar(&level, "level", "debug", "minimum level: debug, info, warn or error")
	flags.StringVar(&grep, "grep", "", "only lines containing this text (case-insensitive)")

	return cmd
}
