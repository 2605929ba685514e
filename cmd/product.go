package cmd

import (
	"fmt"

	"eox-sync/feature/products"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	productOffset int
	productLimit  int
)

// productCmd is the parent command for catalog inspection.
var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Inspect the product catalog",
}

// productGetCmd prints one product with its migration options.
var productGetCmd = &cobra.Command{
	Use:   "get <product-id>",
	Short: "Show one product and its migration options",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		detail, err := products.NewService(rt.products, rt.logger).Get(ctx, args[0])
		if err != nil {
			return err
		}
		if detail == nil {
			return fmt.Errorf("product %s not found", args[0])
		}

		data, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

// productListCmd prints one page of the catalog.
var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		page, err := products.NewService(rt.products, rt.logger).List(ctx, productOffset, productLimit)
		if err != nil {
			return err
		}

		fmt.Printf("\n=== Products %d-%d of %d ===\n", page.Offset+1, page.Offset+len(page.Items), page.Total)
		for _, p := range page.Items {
			eos := "-"
			if p.EndOfSaleDate != nil {
				eos = p.EndOfSaleDate.Format("2006-01-02")
			}
			fmt.Printf("%-32s end of sale %s  synced=%t\n", p.ProductID, eos, p.LcStateSync)
		}

		rt.logger.Debug("Listed products", zap.Int("count", len(page.Items)))
		return nil
	},
}

func init() {
	productListCmd.Flags().IntVar(&productOffset, "offset", 0, "Number of products to skip")
	productListCmd.Flags().IntVar(&productLimit, "limit", 50, "Maximum number of products to show")

	productCmd.AddCommand(productGetCmd, productListCmd)
	RootCmd.AddCommand(productCmd)
}
