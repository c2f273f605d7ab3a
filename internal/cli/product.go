package cli

import (
	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/product/dto"
	"github.com/spf13/cobra"
)

func NewProductCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the product catalog",
	}

	var payload string
	upsertCmd := &cobra.Command{
		Use:   "upsert",
		Short: "Create a product, or update the one named by id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input dto.UpsertProductInput
			if err := decodePayload(payload, &input); err != nil {
				return printEnvelope(cmd, envelope.Fail(err))
			}
			return printEnvelope(cmd, opts.app.Products.UpsertProduct(cmd.Context(), &input))
		},
	}
	upsertCmd.Flags().StringVar(&payload, "json", "", `product fields, e.g. {"name":"Shirt","price":10,"stockBySize":{"M":5}}`)
	cmd.AddCommand(upsertCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Products.DeleteProduct(cmd.Context(), args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Products.GetProduct(cmd.Context(), args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sku <code>",
		Short: "Find a product by SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Products.FindBySKU(cmd.Context(), args[0]))
		},
	})

	filters := &dto.ProductFilters{}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, opts.app.Products.ListProducts(cmd.Context(), filters))
		},
	}
	listCmd.Flags().StringVar(&filters.SearchQuery, "search", "", "name or SKU substring")
	listCmd.Flags().StringVar(&filters.SortBy, "sort", "", "name or price")
	listCmd.Flags().StringVar(&filters.SortOrder, "order", "asc", "asc or desc")
	listCmd.Flags().IntVar(&filters.Page, "page", 1, "page number")
	listCmd.Flags().IntVar(&filters.PageSize, "page-size", 0, "products per page; 0 lists all")
	cmd.AddCommand(listCmd)

	return cmd
}
