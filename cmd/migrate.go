package cmd

import (
	"errors"

	"github.com/jinzhu/gorm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ArnaudCalmettes/binarize/binarize"
	"github.com/ArnaudCalmettes/binarize/models"
)

var errNoDB = errors.New("no history database configured (use --db or BINARIZE_DB)")

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the history database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		return models.Migrate(db)
	},
}

func openDB() (*gorm.DB, error) {
	path := viper.GetString("db")
	if path == "" {
		return nil, errNoDB
	}
	return models.Open(path)
}

// recordRun stores res in the history database, when there is one. Failures
// are only reported: the image has already been written.
func recordRun(res *binarize.Result, log zerolog.Logger) {
	if viper.GetString("db") == "" {
		return
	}

	db, err := openDB()
	if err != nil {
		log.Warn().Err(err).Msg("couldn't open history database")
		return
	}
	defer db.Close()

	if err := models.Migrate(db); err != nil {
		log.Warn().Err(err).Msg("couldn't migrate history database")
		return
	}

	run := models.NewRun()
	run.Input = res.Input
	run.Output = res.Output
	run.Method = string(res.Method)
	run.Threshold = int(res.Threshold)
	run.Width = res.Width
	run.Height = res.Height
	run.Mode = res.Mode
	if err := run.Create(db); err != nil {
		log.Warn().Err(err).Msg("couldn't record run")
		return
	}
	log.Debug().Str("run", run.RunID).Msg("recorded run")
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
