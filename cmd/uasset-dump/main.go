// uasset-dump prints the version block of Unreal Engine packages.
//
// Usage:
//
//	uasset-dump [flags] <package>...
//	uasset-dump version
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/simonhull/uasset"
)

const (
	cliName        = "uasset-dump"
	cliDescription = "print the version block of Unreal Engine packages"
)

type rootFlags struct {
	configPath string
	logLevel   string
	output     string
	probe      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", cliName, color.RedString("%v", err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           cliName + " <package>...",
		Short:         cliDescription,
		Version:       uasset.GetVersionInfo().String(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format (table or plain)")
	cmd.Flags().BoolVar(&flags.probe, "probe", false, "report the byte order of each file")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

// resolveConfig loads the config file and applies any flags that were set
// explicitly on top of it.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (config, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return config{}, err
	}

	if cmd.Flags().Changed("log-level") {
		if cfg.LogLevel, err = parseLevel(flags.logLevel); err != nil {
			return config{}, err
		}
	}
	if cmd.Flags().Changed("output") {
		if cfg.Output, err = parseOutput(flags.output); err != nil {
			return config{}, err
		}
	}
	if cmd.Flags().Changed("probe") {
		cfg.Probe = flags.probe
	}

	return cfg, nil
}

func run(ctx context.Context, stdout, stderr io.Writer, cfg config, paths []string) error {
	logger := newLogger(stderr, cfg.LogLevel)
	logger.Debug().Int("packages", len(paths)).Str("output", cfg.Output).Msg("inspecting packages")

	results := inspect(ctx, paths, cfg, uasset.WithLogger(logger))
	render(stdout, cfg.Output, cfg.Probe, results)

	if n := failed(results); n > 0 {
		return fmt.Errorf("%d of %d packages rejected", n, len(results))
	}
	return nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    color.NoColor,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", cliName).Logger()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print uasset-dump version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := uasset.GetVersionInfo()

			t := table.NewWriter()
			t.AppendRow(table.Row{"Version", info.Version})
			t.AppendRow(table.Row{"GitCommit", info.GitCommit})
			t.AppendRow(table.Row{"BuildTime", info.BuildTime})
			t.AppendRow(table.Row{"GoVersion", info.GoVersion})
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignCenter},
				{Number: 2, Align: text.AlignLeft},
			})
			t.SetOutputMirror(cmd.OutOrStdout())
			t.Render()
		},
	}
}
