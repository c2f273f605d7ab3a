package cli

import (
	"github.com/fekuna/omnipos-local-store/internal/customer/dto"
	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/spf13/cobra"
)

func NewCustomerCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage the customer directory",
	}

	var payload string
	upsertCmd := &cobra.Command{
		Use:   "upsert",
		Short: "Create a customer, or update the one named by id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input dto.UpsertCustomerInput
			if err := decodePayload(payload, &input); err != nil {
				return printEnvelope(cmd, envelope.Fail(err))
			}
			return printEnvelope(cmd, opts.app.Customers.UpsertCustomer(cmd.Context(), &input))
		},
	}
	upsertCmd.Flags().StringVar(&payload, "json", "", `customer fields, e.g. {"name":"Ana","ci":"1234567"}`)
	cmd.AddCommand(upsertCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a customer; their past sales are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Customers.DeleteCustomer(cmd.Context(), args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Customers.GetCustomer(cmd.Context(), args[0]))
		},
	})

	filters := &dto.CustomerFilters{}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Customers.ListCustomers(cmd.Context(), filters))
		},
	}
	listCmd.Flags().StringVar(&filters.SearchQuery, "search", "", "name or CI substring")
	cmd.AddCommand(listCmd)

	return cmd
}
