package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	testOrder := &model.Order{
		ID:     orderID,
		UserID: "U1",
		Cart: []model.CartItem{
			{ProductID: "P001", Name: "Kopi Gayo", Price: 45000, Quantity: 2},
		},
		ShippingAddress: "Jl. Merdeka 1, Bandung",
		TotalAmount:     90000,
		Status:          model.OrderStatusShipped,
		CreatedAt:       time.Now(),
	}

	tests := []struct {
		name           string
		orderID        string
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			orderID:        orderID.String(),
			mockReturn:     testOrder,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Order not found",
			orderID:        orderID.String(),
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeOrderNotFound,
			expectService:  true,
		},
		{
			name:           "Service error",
			orderID:        orderID.String(),
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
			expectService:  true,
		},
		{
			name:           "Invalid UUID",
			orderID:        "not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidID,
		},
		{
			name:           "Missing order ID",
			orderID:        "",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, orderID).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/orders/"+tt.orderID, nil)
			req.SetPathValue("id", tt.orderID)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.Order
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, orderID, got.ID)
				assert.Equal(t, model.OrderStatusShipped, got.Status)
				require.Len(t, got.Cart, 1)
			} else {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			}
		})
	}
}
