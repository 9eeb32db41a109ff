package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ArnaudCalmettes/binarize/models"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := models.Migrate(db); err != nil {
			return err
		}
		runs, err := models.ListRuns(db, historyLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tMETHOD\tTHRESHOLD\tSIZE\tINPUT\tOUTPUT")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%d\t%dx%d\t%s\t%s\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"), r.Method, r.Threshold,
				r.Width, r.Height, r.Input, r.Output)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show (0 for all)")
}
