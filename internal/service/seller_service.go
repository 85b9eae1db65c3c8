package service

import (
	"context"
	"fmt"

	"marketplace-catalog/internal/catalog"
	"marketplace-catalog/internal/model"
	"marketplace-catalog/internal/repository"

	"github.com/rs/zerolog"
)

type sellerService struct {
	sellerRepo  repository.SellerRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewSellerService creates a new seller service.
func NewSellerService(
	sellerRepo repository.SellerRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) SellerService {
	return &sellerService{
		sellerRepo:  sellerRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "seller").Logger(),
	}
}

func (s *sellerService) Search(ctx context.Context, query string) ([]model.Seller, error) {
	sellers, err := listValidSellers(ctx, s.sellerRepo, s.logger)
	if err != nil {
		return nil, err
	}

	return catalog.SearchSellers(sellers, query), nil
}

func (s *sellerService) Profile(ctx context.Context, id string) (*model.SellerProfile, error) {
	if id == "" {
		return nil, model.ErrSellerNotFound
	}

	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("seller_id", id).Msg("failed to get seller by ID")
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}
	if seller == nil {
		s.logger.Debug().Str("seller_id", id).Msg("seller not found")
		return nil, model.ErrSellerNotFound
	}
	if err := catalog.ValidateSeller(*seller); err != nil {
		s.logger.Warn().Err(err).Str("seller_id", id).Msg("stored seller is invalid")
		return nil, model.ErrSellerNotFound
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("seller_id", id).Msg("failed to list products for seller")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	valid := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.AccountID == seller.AccountID && catalog.IsValidProduct(p) {
			valid = append(valid, p)
		}
	}

	profile := catalog.BuildSellerProfile(*seller, valid)
	return &profile, nil
}
