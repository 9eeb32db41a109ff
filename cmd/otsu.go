package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArnaudCalmettes/binarize/binarize"
)

var showHistogram bool

// otsuCmd represents the otsu command
var otsuCmd = &cobra.Command{
	Use:   "otsu <input>",
	Short: "Compute the Otsu threshold of an image without writing anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := binarize.Inspect(args[0], newLogger())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %dx%d %s\n", rep.Input, rep.Width, rep.Height, rep.Mode)
		fmt.Fprintf(out, "otsu threshold: %d\n", rep.Otsu)
		if showHistogram {
			for v, n := range rep.Histogram {
				if n > 0 {
					fmt.Fprintf(out, "%3d %d\n", v, n)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(otsuCmd)

	otsuCmd.Flags().BoolVar(&showHistogram, "histogram", false, "also print the non-empty histogram buckets")
}
