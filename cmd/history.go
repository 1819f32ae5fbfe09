package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/rfrecord/internal/db"
	"github.com/chriserin/rfrecord/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous conversions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunHistory(cmd.OutOrStdout(), historyDBFlag, historyLimit)
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of conversions to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func RunHistory(w io.Writer, path string, limit int) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(w, "no conversions recorded yet")
		return nil
	}

	sqlDB, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer sqlDB.Close()

	conversions, err := db.ListConversions(sqlDB, limit)
	if err != nil {
		return err
	}
	if len(conversions) == 0 {
		fmt.Fprintln(w, "no conversions recorded yet")
		return nil
	}

	nameWidth, sourceWidth := 0, 0
	for _, c := range conversions {
		if len(c.TestName) > nameWidth {
			nameWidth = len(c.TestName)
		}
		if len(c.Source) > sourceWidth {
			sourceWidth = len(c.Source)
		}
	}

	for _, c := range conversions {
		ui.HistoryRow(w, c, nameWidth, sourceWidth)
	}
	return nil
}
