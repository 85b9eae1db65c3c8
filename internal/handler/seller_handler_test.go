package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSellerService is a mock implementation of SellerService.
type MockSellerService struct {
	mock.Mock
}

func (m *MockSellerService) Search(ctx context.Context, query string) ([]model.Seller, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Seller), args.Error(1)
}

func (m *MockSellerService) Profile(ctx context.Context, id string) (*model.SellerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SellerProfile), args.Error(1)
}

func TestSellerHandler_Search(t *testing.T) {
	logger := zerolog.Nop()

	sellers := []model.Seller{
		{ID: "S1", AccountID: "A1", Name: "Toko Kopi"},
	}

	tests := []struct {
		name           string
		path           string
		expectedQuery  string
		mockReturn     []model.Seller
		mockError      error
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "Query forwarded",
			path:           "/api/sellers?q=kopi",
			expectedQuery:  "kopi",
			mockReturn:     sellers,
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "Empty query lists everything",
			path:           "/api/sellers",
			expectedQuery:  "",
			mockReturn:     sellers,
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "Service failure",
			path:           "/api/sellers?q=kopi",
			expectedQuery:  "kopi",
			mockError:      errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSellerService)
			handler := NewSellerHandler(mockService, logger)

			if tt.mockError != nil {
				mockService.On("Search", mock.Anything, tt.expectedQuery).Return(nil, tt.mockError)
			} else {
				mockService.On("Search", mock.Anything, tt.expectedQuery).Return(tt.mockReturn, nil)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler.Search(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []model.Seller
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Len(t, got, tt.expectedCount)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestSellerHandler_Profile(t *testing.T) {
	logger := zerolog.Nop()

	profile := &model.SellerProfile{
		Seller:        model.Seller{ID: "S1", AccountID: "A1", Name: "Toko Kopi"},
		Products:      []model.ProductWithUser{},
		ProductCount:  0,
		AverageRating: 4.5,
		Stars:         [5]bool{true, true, true, true, true},
	}

	tests := []struct {
		name           string
		sellerID       string
		mockReturn     *model.SellerProfile
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			sellerID:       "S1",
			mockReturn:     profile,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Seller not found",
			sellerID:       "S404",
			mockError:      model.ErrSellerNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeSellerNotFound,
			expectService:  true,
		},
		{
			name:           "Missing seller ID",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSellerService)
			handler := NewSellerHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Profile", mock.Anything, tt.sellerID).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/sellers/"+tt.sellerID, nil)
			req.SetPathValue("id", tt.sellerID)
			w := httptest.NewRecorder()

			handler.Profile(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.SellerProfile
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, "S1", got.Seller.ID)
				assert.Equal(t, 4.5, got.AverageRating)
			} else {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}
