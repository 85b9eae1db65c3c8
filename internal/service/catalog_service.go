package service

import (
	"context"
	"fmt"

	"marketplace-catalog/internal/catalog"
	"marketplace-catalog/internal/model"
	"marketplace-catalog/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo       repository.ProductRepository
	sellerRepo        repository.SellerRepository
	lowStockThreshold int
	logger            zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	lowStockThreshold int,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		productRepo:       productRepo,
		sellerRepo:        sellerRepo,
		lowStockThreshold: lowStockThreshold,
		logger:            logger.With().Str("service", "catalog").Logger(),
	}
}

// ListProducts filters the valid products. The handler has already parsed and
// validated HTTP filters; FilterProducts still rejects bad input from other callers.
func (s *catalogService) ListProducts(ctx context.Context, filter model.ProductFilterInput) ([]model.Product, error) {
	products, err := s.validProducts(ctx)
	if err != nil {
		return nil, err
	}

	matched, err := catalog.FilterProducts(products, filter)
	if err != nil {
		s.logger.Debug().Err(err).Msg("rejected product filter")
		return nil, err
	}

	s.logger.Debug().
		Int("total", len(products)).
		Int("matched", len(matched)).
		Msg("filtered products")

	return matched, nil
}

// GetProduct retrieves a single product by ID. Products failing validation are
// reported as not found.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	if err := catalog.ValidateProduct(*product); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("stored product is invalid")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// GeographyTree loads products and sellers concurrently.
func (s *catalogService) GeographyTree(ctx context.Context) (*model.GeographyTree, error) {
	var (
		products []model.Product
		sellers  []model.Seller
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.validProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sellers, err = s.validSellers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tree := catalog.BuildGeographyTree(products, sellers)

	s.logger.Debug().
		Int("regions", len(tree.Regions)).
		Int("unlocated_products", tree.UnlocatedProducts).
		Int("unlocated_sellers", tree.UnlocatedSellers).
		Msg("built geography tree")

	return tree, nil
}

// InventoryStats summarises stock and value over the products that pass validation.
func (s *catalogService) InventoryStats(ctx context.Context) (*model.InventoryStats, error) {
	products, err := s.validProducts(ctx)
	if err != nil {
		return nil, err
	}

	stats := catalog.ComputeInventoryStats(products, s.lowStockThreshold)
	return &stats, nil
}

// validProducts lists products and drops the ones that fail validation.
func (s *catalogService) validProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	valid := make([]model.Product, 0, len(products))
	for _, p := range products {
		if err := catalog.ValidateProduct(p); err != nil {
			s.logger.Warn().Err(err).Str("product_id", p.ID).Msg("skipping invalid product")
			continue
		}
		valid = append(valid, p)
	}

	return valid, nil
}

func (s *catalogService) validSellers(ctx context.Context) ([]model.Seller, error) {
	return listValidSellers(ctx, s.sellerRepo, s.logger)
}

func listValidSellers(ctx context.Context, repo repository.SellerRepository, logger zerolog.Logger) ([]model.Seller, error) {
	sellers, err := repo.ListSellers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list sellers")
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	valid := make([]model.Seller, 0, len(sellers))
	for _, seller := range sellers {
		if err := catalog.ValidateSeller(seller); err != nil {
			logger.Warn().Err(err).Str("seller_id", seller.ID).Msg("skipping invalid seller")
			continue
		}
		valid = append(valid, seller)
	}

	return valid, nil
}
