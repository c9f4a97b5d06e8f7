package commands

import (
	"github.com/spf13/cobra"

	"github.com/fastkv/fstdb"
)

var (
	dbPath  string
	useBolt bool
	atomic  bool

	db *fstdb.DB
)

func Execute() error {
	root := &cobra.Command{
		Use:          "fstdb",
		Short:        "Inspect and edit fstdb snapshot files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opt := fstdb.Options{Atomic: atomic}
			if useBolt {
				opt.Backend = fstdb.BackendBolt
			}
			var err error
			db, err = fstdb.Open(dbPath, opt)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if db == nil {
				return nil
			}
			return db.Close()
		},
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "fastdb.bin", "snapshot file")
	root.PersistentFlags().BoolVar(&useBolt, "bolt", false, "use a bbolt backend instead of the snapshot file")
	root.PersistentFlags().BoolVar(&atomic, "atomic", false, "write snapshots via temp-file-and-rename")

	root.AddCommand(getCmd(), setCmd(), delCmd(), hasCmd(), keysCmd(),
		exportCmd(), importCmd(), backupCmd(), restoreCmd())
	return root.Execute()
}
