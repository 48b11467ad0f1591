package backup

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkoehlmann/pitbook-go/log"
	"github.com/pkoehlmann/pitbook-go/pkg/analytics"
	"github.com/pkoehlmann/pitbook-go/pkg/cmd/util"
	"github.com/pkoehlmann/pitbook-go/pkg/db/migrate"
	"github.com/pkoehlmann/pitbook-go/pkg/export"
)

func NewBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "saves and restores the whole logbook as one JSON file",
	}
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newRestoreCmd())
	return cmd
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <file>",
		Short: "writes all records to a JSON backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return createBackup(args[0])
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "upserts all records from a JSON backup file",
		Long: `Reads a backup created by "backup create" and writes every record back
into the database. Existing records with the same id are replaced, records
not present in the backup are left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return restoreBackup(args[0])
		},
	}
}

func createBackup(file string) error {
	db, err := util.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := analytics.NewLoader(db).Load(context.Background(), false)
	if err != nil {
		return err
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteBackup(f, snap); err != nil {
		return err
	}
	log.Info("backup written",
		log.String("file", file),
		log.Int("runs", len(snap.RunLogs)))
	return f.Close()
}

func restoreBackup(file string) error {
	db, err := util.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()
	// restoring into a fresh database file must work too
	if err := migrate.Up(db); err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	restored, err := export.RestoreBackup(context.Background(), db, f)
	if err != nil {
		return err
	}
	log.Info("backup restored",
		log.String("file", file),
		log.Int("cars", len(restored.Cars)),
		log.Int("tracks", len(restored.Tracks)),
		log.Int("events", len(restored.Events)),
		log.Int("setups", len(restored.Setups)),
		log.Int("runs", len(restored.RunLogs)))
	return nil
}
