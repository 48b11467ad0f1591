package migrate

import (
	"github.com/spf13/cobra"

	"github.com/pkoehlmann/pitbook-go/log"
	"github.com/pkoehlmann/pitbook-go/pkg/cmd/util"
	"github.com/pkoehlmann/pitbook-go/pkg/config"
	"github.com/pkoehlmann/pitbook-go/pkg/db/migrate"
)

func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "brings the database schema up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startMigration()
		},
	}
	return cmd
}

func startMigration() error {
	db, err := util.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate.Up(db); err != nil {
		return err
	}
	log.Info("database is up to date", log.String("db", config.DB))
	return nil
}
