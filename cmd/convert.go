package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/rfrecord/internal/db"
	"github.com/chriserin/rfrecord/internal/parser"
	"github.com/chriserin/rfrecord/internal/robot"
	"github.com/chriserin/rfrecord/internal/ui"
)

var (
	// ErrNoActions means the script contained no recognizable statements.
	ErrNoActions = errors.New("no actions recorded")
	// ErrUnmatched is returned in strict mode when some lines were not recognized.
	ErrUnmatched = errors.New("unrecognized statements")
	// ErrEmptyTestName means --test-name was blank.
	ErrEmptyTestName = errors.New("test name must not be empty")
)

// ConvertOptions controls how a script becomes a .robot file.
type ConvertOptions struct {
	TestName  string
	Browser   string
	Headless  bool
	Output    string // "" or "-" writes the test to w
	Strict    bool
	Verbose   bool
	HistoryDB string // "" disables history
}

var (
	convertOpts      ConvertOptions
	convertNoHistory bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <script.py>",
	Short: "Convert a Playwright codegen script into a Robot Framework test",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := convertOpts
		opts.HistoryDB = historyDB(convertNoHistory)
		return RunConvert(cmd.OutOrStdout(), args[0], opts)
	},
}

func init() {
	addConvertFlags(convertCmd, &convertOpts, &convertNoHistory)
	convertCmd.Flags().StringVarP(&convertOpts.Output, "output", "o", "", "Output file for the Robot Framework test (default: stdout)")
	rootCmd.AddCommand(convertCmd)
}

func addConvertFlags(c *cobra.Command, opts *ConvertOptions, noHistory *bool) {
	c.Flags().StringVarP(&opts.Browser, "browser", "b", "chromium", "Browser for New Browser: chromium, firefox or webkit")
	c.Flags().StringVarP(&opts.TestName, "test-name", "n", "Recorded Test", "Name of the test case")
	c.Flags().BoolVar(&opts.Headless, "headless", false, "Run the generated test headless")
	c.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when a statement is not recognized")
	c.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Print every generated step and skipped line")
	c.Flags().BoolVar(noHistory, "no-history", false, "Do not record this conversion in the history database")
}

func historyDB(disabled bool) string {
	if disabled {
		return ""
	}
	return historyDBFlag
}

func RunConvert(w io.Writer, input string, opts ConvertOptions) error {
	script, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	return convertScript(w, input, script, opts)
}

// convertScript is shared by convert and record. source names where the
// script came from in the history table.
func convertScript(w io.Writer, source string, script []byte, opts ConvertOptions) error {
	browser, err := robot.ParseBrowser(opts.Browser)
	if err != nil {
		return err
	}
	if strings.TrimSpace(opts.TestName) == "" {
		return ErrEmptyTestName
	}

	actions, unmatched := parser.Parse(script)
	if opts.Strict && len(unmatched) > 0 {
		return unmatchedError(unmatched)
	}
	if len(actions) == 0 {
		return ErrNoActions
	}

	test := robot.Render(actions, robot.Options{
		TestName: opts.TestName,
		Browser:  browser,
		Headless: opts.Headless,
	})

	toStdout := opts.Output == "" || opts.Output == "-"
	if toStdout {
		if _, err := io.WriteString(w, test); err != nil {
			return err
		}
	} else {
		if opts.Verbose {
			for _, u := range unmatched {
				ui.SkipLine(w, u.Line, u.Text)
			}
			for i, a := range actions {
				ui.StepLine(w, i+1, robot.Statement(a))
			}
		}
		if err := writeOutput(opts.Output, test); err != nil {
			return err
		}
		ui.WroteLine(w, opts.Output, len(actions))
		ui.SummaryLine(w, len(actions), len(unmatched))
	}

	if opts.HistoryDB == "" {
		return nil
	}
	output := opts.Output
	if toStdout {
		output = "-"
	}
	return saveHistory(opts.HistoryDB, db.Conversion{
		Source:       source,
		OutputPath:   output,
		TestName:     opts.TestName,
		Browser:      string(browser),
		Headless:     opts.Headless,
		ActionCount:  len(actions),
		SkippedCount: len(unmatched),
	})
}

func unmatchedError(unmatched []parser.Unmatched) error {
	var b strings.Builder
	for _, u := range unmatched {
		fmt.Fprintf(&b, "\n  line %d: %s", u.Line, u.Text)
	}
	return fmt.Errorf("%w (%d):%s", ErrUnmatched, len(unmatched), b.String())
}

func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func saveHistory(path string, c db.Conversion) error {
	sqlDB, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer sqlDB.Close()

	if _, err := db.InsertConversion(sqlDB, c); err != nil {
		return err
	}
	return nil
}
