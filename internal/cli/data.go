package cli

import (
	"time"

	backupUCPkg "github.com/fekuna/omnipos-local-store/internal/backup/usecase"
	"github.com/spf13/cobra"
)

func NewDataCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Load, reset, back up or import the whole document",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "load",
		Short: "Print the whole document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Backup.LoadData(cmd.Context()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Replace the document with an empty one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Backup.ResetData(cmd.Context()))
		},
	})

	var out string
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a copy of the document to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Backup.BackupData(cmd.Context(), out))
		},
	}
	backupCmd.Flags().StringVar(&out, "out", backupUCPkg.DefaultBackupName(time.Now()), "destination file; empty cancels")
	cmd.AddCommand(backupCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "import <path>",
		Short: "Replace the document with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Backup.ImportData(cmd.Context(), args[0]))
		},
	})

	return cmd
}
