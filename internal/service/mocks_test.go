package service

import (
	"context"

	"marketplace-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockSellerRepository is a mock implementation of SellerRepository.
type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) ListSellers(ctx context.Context) ([]model.Seller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetByID(ctx context.Context, id string) (*model.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Seller), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func validProduct(id, accountID string, price float64, stock int, loc *model.Location) model.Product {
	return model.Product{
		ID:         id,
		Name:       "Product " + id,
		Price:      price,
		Stock:      stock,
		Currency:   model.CurrencyIDR,
		MarketType: model.MarketTypeDomestic,
		AccountID:  accountID,
		Location:   loc,
	}
}
