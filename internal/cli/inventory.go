package cli

import (
	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/inventory/dto"
	"github.com/spf13/cobra"
)

func NewInventoryCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inspect and adjust per-size stock",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <productId>",
		Short: "Show stock per size for one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Inventory.GetProductInventory(cmd.Context(), args[0]))
		},
	})

	var threshold int
	lowCmd := &cobra.Command{
		Use:   "low",
		Short: "List sizes at or below a stock threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Inventory.ListLowStock(cmd.Context(), threshold))
		},
	}
	lowCmd.Flags().IntVar(&threshold, "threshold", 2, "stock level counted as low")
	cmd.AddCommand(lowCmd)

	var payload string
	adjustCmd := &cobra.Command{
		Use:   "adjust",
		Short: "Apply a signed change to one size counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input dto.AdjustInventoryInput
			if err := decodePayload(payload, &input); err != nil {
				return printEnvelope(cmd, envelope.Fail(err))
			}
			return printEnvelope(cmd, opts.app.Inventory.AdjustInventory(cmd.Context(), &input))
		},
	}
	adjustCmd.Flags().StringVar(&payload, "json", "", `adjustment, e.g. {"productId":"<id>","size":"M","quantityChange":5,"reason":"restock"}`)
	cmd.AddCommand(adjustCmd)

	return cmd
}
