package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/rfrecord/internal/recorder"
	"github.com/chriserin/rfrecord/internal/robot"
	"github.com/chriserin/rfrecord/internal/ui"
)

// RecordOptions adds the codegen settings to ConvertOptions.
type RecordOptions struct {
	ConvertOptions
	URL        string
	Playwright string
}

var (
	recordOpts      RecordOptions
	recordNoHistory bool
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record browser interactions with Playwright codegen and save them as a Robot Framework test",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := recordOpts
		opts.HistoryDB = historyDB(recordNoHistory)
		runner := recorder.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
		return RunRecord(cmd.Context(), cmd.OutOrStdout(), runner, opts)
	},
}

func init() {
	addConvertFlags(recordCmd, &recordOpts.ConvertOptions, &recordNoHistory)
	recordCmd.Flags().StringVarP(&recordOpts.Output, "output", "o", "recorded_test.robot", "Output file for the Robot Framework test")
	recordCmd.Flags().StringVarP(&recordOpts.URL, "url", "u", "", "Initial URL to navigate to")
	recordCmd.Flags().StringVar(&recordOpts.Playwright, "playwright", "playwright", "Playwright CLI executable")
	rootCmd.AddCommand(recordCmd)
}

func RunRecord(ctx context.Context, w io.Writer, runner recorder.Runner, opts RecordOptions) error {
	// Reject bad options before a window opens.
	if _, err := robot.ParseBrowser(opts.Browser); err != nil {
		return err
	}
	if strings.TrimSpace(opts.TestName) == "" {
		return ErrEmptyTestName
	}

	rec := &recorder.Recorder{
		Runner:     runner,
		Playwright: opts.Playwright,
		Browser:    opts.Browser,
		URL:        opts.URL,
		Started:    func(command []string) { ui.RecordingLine(w, command) },
	}
	script, err := rec.Record(ctx)
	if err != nil {
		return err
	}

	if err := convertScript(w, "codegen", []byte(script), opts.ConvertOptions); err != nil {
		return err
	}
	if opts.Output != "" && opts.Output != "-" {
		ui.RunHint(w, opts.Output)
	}
	return nil
}
