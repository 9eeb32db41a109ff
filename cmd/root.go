package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ArnaudCalmettes/binarize/binarize"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "binarize <input>",
	Short: "Convert an image to black and white",
	Long: `Binarize converts a grayscale or color image into a strictly black/white image,
using either a fixed threshold (simple) or one computed with Otsu's method (otsu).

Examples:
  binarize input.jpg                    # threshold 127, writes input_binary.jpg
  binarize input.jpg -t 150             # threshold 150
  binarize input.jpg -o output.png      # explicit output file
  binarize input.jpg -m otsu            # automatic threshold
  binarize input.jpg -t 100 -o out.png  # combined`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runBinarize(args[0])
	}
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.binarize.yaml)")
	rootCmd.PersistentFlags().String("db", "", "sqlite database recording runs (disabled if empty)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.Flags().StringP("output", "o", "", "output image (default: <input>_binary.<ext>)")
	rootCmd.Flags().IntP("threshold", "t", binarize.DefaultThreshold, "binarization threshold (0-255)")
	rootCmd.Flags().StringP("method", "m", string(binarize.MethodSimple), "binarization method: simple or otsu")
	rootCmd.Flags().Bool("invert", false, "write black where the image is bright")
	rootCmd.Flags().Bool("normalize", false, "stretch contrast before thresholding")
	for _, name := range []string{"threshold", "method", "invert", "normalize"} {
		viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".binarize" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".binarize")
	}

	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("BINARIZE")

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log := newLogger()
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// options gathers the binarization options from flags, environment and
// config file.
func options(input string) (binarize.Options, error) {
	method, err := binarize.ParseMethod(viper.GetString("method"))
	if err != nil {
		return binarize.Options{}, err
	}
	output, _ := rootCmd.Flags().GetString("output")
	opts := binarize.Options{
		Input:     input,
		Output:    output,
		Threshold: viper.GetInt("threshold"),
		Method:    method,
		Invert:    viper.GetBool("invert"),
		Normalize: viper.GetBool("normalize"),
	}
	return opts, opts.Validate()
}

func runBinarize(input string) error {
	log := newLogger()

	opts, err := options(input)
	if err != nil {
		return err
	}

	res, err := binarize.Run(opts, log)
	if err != nil {
		return err
	}

	recordRun(res, log)
	return nil
}
