package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chriserin/rfrecord/internal/config"
)

const version = "0.1.0"

var historyDBFlag string

var rootCmd = &cobra.Command{
	Use:   "rfrecord",
	Short: "Record browser interactions as Robot Framework tests",
	Long: `rfrecord runs Playwright codegen, or reads a script it produced earlier,
and writes an equivalent Robot Framework test using the Browser library.

Examples:
  rfrecord record --url https://example.com
  rfrecord record --browser firefox --url https://example.com --output my_test.robot
  rfrecord convert recorded.py --test-name "Login" --headless`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return applyConfig(cmd.Flags(), cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&historyDBFlag, "history-db", config.Default().HistoryDB, "SQLite file that keeps the conversion history")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if code := reportError(os.Stderr, err); code != 0 {
		os.Exit(code)
	}
}

// reportError prints err once and returns the process exit code.
func reportError(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(w, "Recording cancelled by user.")
		return 130
	default:
		fmt.Fprintln(w, "Error:", err)
		return 1
	}
}

// applyConfig fills flags the user did not set from environment and .env
// configuration.
func applyConfig(flags *pflag.FlagSet, cfg config.Config) error {
	values := map[string]string{
		"browser":    cfg.Browser,
		"headless":   strconv.FormatBool(cfg.Headless),
		"test-name":  cfg.TestName,
		"history-db": cfg.HistoryDB,
		"playwright": cfg.Playwright,
	}
	if flags.Lookup("url") != nil {
		// Only record has a default output file; convert prints to stdout.
		values["output"] = cfg.Output
	}

	for name, value := range values {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("applying config to --%s: %w", name, err)
		}
	}
	return nil
}
