// Package cli provides the Cobra-based catalogctl command, which runs the
// catalogue queries against a snapshot file without a server.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"marketplace-catalog/internal/config"
	"marketplace-catalog/internal/model"
	"marketplace-catalog/internal/service"
	"marketplace-catalog/internal/snapshot"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the services built once the snapshot is loaded.
type app struct {
	v       *viper.Viper
	catalog service.CatalogService
	sellers service.SellerService
}

// NewRootCommand builds the catalogctl command tree. Flags may also be set
// through CATALOG_* environment variables or a config file.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Query a marketplace catalogue snapshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.String("snapshot-path", "data/catalog.json.gz", "gzipped catalogue snapshot")
	flags.Int("low-stock-threshold", 5, "stock at or below which a product counts as low")
	flags.String("log-level", "warn", "log level")
	flags.String("config", "", "config file")

	for _, name := range []string{"snapshot-path", "low-stock-threshold", "log-level", "config"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}
	a.v.SetEnvPrefix("CATALOG")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.productsCommand(),
		a.geographyCommand(),
		a.statsCommand(),
		a.sellersCommand(),
		a.sellerCommand(),
	)

	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func (a *app) setup(ctx context.Context) error {
	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	logger := config.NewLoggerTo(config.LoggerConfig{
		Level:  a.v.GetString("log-level"),
		Format: "console",
	}, os.Stderr)

	threshold := a.v.GetInt("low-stock-threshold")
	if threshold < 0 {
		return fmt.Errorf("low-stock-threshold must not be negative")
	}

	store, err := snapshot.NewStore(ctx, snapshot.NewFileLoader(logger), a.v.GetString("snapshot-path"), logger)
	if err != nil {
		return err
	}

	a.catalog = service.NewCatalogService(store.Products(), store.Sellers(), threshold, logger)
	a.sellers = service.NewSellerService(store.Sellers(), store.Products(), logger)
	return nil
}

func (a *app) productsCommand() *cobra.Command {
	var (
		search, categoryID, sortBy string
		region, subregion, city    string
		marketType, brandID        string
		minPrice, maxPrice         float64
		inStock, discountOnly      bool
		labels                     []string
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products matching a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := cmd.Flags().Changed
			var f model.ProductFilterInput

			if changed("search") {
				f.Search = &search
			}
			if changed("category") {
				f.CategoryID = &categoryID
			}
			if changed("min-price") {
				f.MinPrice = &minPrice
			}
			if changed("max-price") {
				f.MaxPrice = &maxPrice
			}
			if changed("in-stock") {
				f.InStock = &inStock
			}
			if changed("sort-by") {
				s := model.SortBy(sortBy)
				f.SortBy = &s
			}
			if changed("region") {
				f.Region = &region
			}
			if changed("subregion") {
				f.Subregion = &subregion
			}
			if changed("city") {
				f.City = &city
			}
			if changed("market-type") {
				m := model.MarketType(marketType)
				f.MarketType = &m
			}
			if changed("brand") {
				f.BrandID = &brandID
			}
			if changed("discount-only") {
				f.DiscountOnly = &discountOnly
			}
			for _, l := range labels {
				f.Labels = append(f.Labels, model.Label(l))
			}

			products, err := a.catalog.ListProducts(cmd.Context(), f)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), products)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&search, "search", "", "case-insensitive text search")
	fs.StringVar(&categoryID, "category", "", "category ID")
	fs.Float64Var(&minPrice, "min-price", 0, "minimum price")
	fs.Float64Var(&maxPrice, "max-price", 0, "maximum price")
	fs.BoolVar(&inStock, "in-stock", false, "only products with stock")
	fs.StringVar(&sortBy, "sort-by", "", "price_asc|price_desc|rating|newest")
	fs.StringVar(&region, "region", "", "region name")
	fs.StringVar(&subregion, "subregion", "", "subregion name")
	fs.StringVar(&city, "city", "", "city name")
	fs.StringVar(&marketType, "market-type", "", "domestic|global")
	fs.StringVar(&brandID, "brand", "", "brand ID")
	fs.StringSliceVar(&labels, "labels", nil, "labels, any of which must match")
	fs.BoolVar(&discountOnly, "discount-only", false, "only discounted products")

	return cmd
}

func (a *app) geographyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "geography",
		Short: "Print the region/subregion/city tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.catalog.GeographyTree(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), tree)
		},
	}
}

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print inventory statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.catalog.InventoryStats(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), stats)
		},
	}
}

func (a *app) sellersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sellers [query]",
		Short: "Search sellers by name or location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			sellers, err := a.sellers.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), sellers)
		},
	}
}

func (a *app) sellerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seller <id>",
		Short: "Print a seller profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.sellers.Profile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), profile)
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
