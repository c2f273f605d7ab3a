package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-local-store/config"
	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/spf13/cobra"
)

// ErrOperationFailed is returned after a failure envelope has been printed.
var ErrOperationFailed = errors.New("operation failed")

// RootOptions holds global flags and the store opened for the running command.
type RootOptions struct {
	DataDir string
	File    string

	app *App
}

// NewRootCommand creates the posstore command tree. Flags default to cfg.
func NewRootCommand(cfg *config.Config, log logger.ZapLogger) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "posstore",
		Short:         "Local document store for a retail point of sale",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			storeCfg := *cfg
			storeCfg.Store.DataDir = opts.DataDir
			storeCfg.Store.FileName = opts.File
			app, err := NewApp(cmd.Context(), &storeCfg, log)
			if err != nil {
				return printEnvelope(cmd, envelope.Fail(err))
			}
			opts.app = app
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", cfg.Store.DataDir, "directory holding the store file")
	cmd.PersistentFlags().StringVar(&opts.File, "file", cfg.Store.FileName, "store file name")

	cmd.AddCommand(NewDataCommand(opts))
	cmd.AddCommand(NewProductCommand(opts))
	cmd.AddCommand(NewCustomerCommand(opts))
	cmd.AddCommand(NewSaleCommand(opts))
	cmd.AddCommand(NewInventoryCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}

// printEnvelope writes env as indented JSON and turns a failure into
// ErrOperationFailed so the process exits non-zero.
func printEnvelope(cmd *cobra.Command, env envelope.Envelope) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", ErrOperationFailed, env.Error)
	}
	return nil
}

// decodePayload reads a --json flag value into v, rejecting unknown fields.
// Failures are validation errors so they reach the caller as an envelope.
func decodePayload(payload string, v any) error {
	if strings.TrimSpace(payload) == "" {
		return apperror.Validation("--json payload is required")
	}
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperror.Validation("invalid --json payload: %v", err)
	}
	return nil
}
