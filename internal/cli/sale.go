package cli

import (
	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/sale/dto"
	"github.com/spf13/cobra"
)

func NewSaleCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Record and browse sales",
	}

	var payload string
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Record a sale and take its items out of stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input dto.RecordSaleInput
			if err := decodePayload(payload, &input); err != nil {
				return printEnvelope(cmd, envelope.Fail(err))
			}
			return printEnvelope(cmd, opts.app.Sales.RecordSale(cmd.Context(), &input))
		},
	}
	recordCmd.Flags().StringVar(&payload, "json", "",
		`sale, e.g. {"items":[{"productId":"<id>","size":"M","quantity":1,"price":10}],"paymentMethod":"cash"}`)
	cmd.AddCommand(recordCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one sale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Sales.GetSale(cmd.Context(), args[0]))
		},
	})

	filters := &dto.SaleFilters{}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sales, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Sales.ListSales(cmd.Context(), filters))
		},
	}
	listCmd.Flags().StringVar(&filters.CustomerID, "customer", "", "only sales of this customer")
	listCmd.Flags().IntVar(&filters.Limit, "limit", 0, "maximum number of sales; 0 lists all")
	cmd.AddCommand(listCmd)

	return cmd
}
