package cli

import (
	"github.com/spf13/cobra"
)

func NewReportCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Dashboard figures",
	}

	var recent int
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Sales totals, stock units and the most recent sales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("recent") {
				return printEnvelope(cmd, opts.app.Reports.SummaryWithRecent(cmd.Context(), recent))
			}
			return printEnvelope(cmd, opts.app.Reports.Summary(cmd.Context()))
		},
	}
	summaryCmd.Flags().IntVar(&recent, "recent", 0, "number of recent sales to include")
	cmd.AddCommand(summaryCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "stock",
		Short: "Stock units per product and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Reports.StockDetail(cmd.Context()))
		},
	})

	return cmd
}
