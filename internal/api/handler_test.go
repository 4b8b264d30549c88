package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codmart-be/internal/auth"
	"codmart-be/internal/cart"
	"codmart-be/internal/catalog"
	"codmart-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of order.Service
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, c cart.Cart, shipping order.ShippingInfo, paymentMethod string) (*order.Order, error) {
	args := m.Called(ctx, c, shipping, paymentMethod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id, status string) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func newTestHandler(t *testing.T, orderSvc order.Service) (*Handler, *auth.Manager) {
	t.Helper()

	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	mgr := auth.NewManager("test-secret", hash)
	catalogRepo := catalog.NewStaticRepository()

	return NewHandler(
		catalog.NewService(catalogRepo),
		cart.NewService(catalogRepo, cart.PolicyLenient),
		orderSvc,
		mgr,
	), mgr
}

func doJSON(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Root(t *testing.T) {
	h, _ := newTestHandler(t, new(MockOrderService))

	rec := doJSON(t, h.Routes(), http.MethodGet, "/api/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Amazon COD API", resp["message"])
	assert.NotEmpty(t, resp["version"])
}

func TestHandler_Lookup(t *testing.T) {
	h, _ := newTestHandler(t, new(MockOrderService))
	routes := h.Routes()

	t.Run("ByASIN", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPost, "/api/amazon/lookup", `{"asin":"B08N5WRWNW"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Title    string  `json:"title"`
			CODPrice float64 `json:"cod_price"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Title, "Echo Dot")
		assert.InDelta(t, 59.99, resp.CODPrice, 0.01)
	})

	t.Run("ByURL", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPost, "/api/amazon/lookup", `{"url":"https://www.amazon.com/dp/B08N5WRWNW"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UnknownASIN", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPost, "/api/amazon/lookup", `{"asin":"INVALID123"}`, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("NoInput", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPost, "/api/amazon/lookup", `{}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPost, "/api/amazon/lookup", `{`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetProduct(t *testing.T) {
	h, _ := newTestHandler(t, new(MockOrderService))
	routes := h.Routes()

	rec := doJSON(t, routes, http.MethodGet, "/api/products/B0C1SLD1PZ", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ASIN       string  `json:"asin"`
		Commission float64 `json:"commission"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "B0C1SLD1PZ", resp.ASIN)
	assert.InDelta(t, 25.00, resp.Commission, 0.01)

	rec = doJSON(t, routes, http.MethodGet, "/api/products/INVALID123", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CalculateCart(t *testing.T) {
	h, _ := newTestHandler(t, new(MockOrderService))
	routes := h.Routes()

	body := `{"items":[{"asin":"B08N5WRWNW","quantity":2},{"asin":"INVALID123","quantity":1},{"asin":"B0C1SLD1PZ","quantity":1}]}`
	rec := doJSON(t, routes, http.MethodPost, "/api/cart", body, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp cart.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "B08N5WRWNW", resp.Items[0].ASIN)
	assert.Equal(t, "B0C1SLD1PZ", resp.Items[1].ASIN)
	assert.InDelta(t, resp.Subtotal+resp.TotalCommission+resp.TotalHandling, resp.TotalCODPrice, 0.001)
}

func TestHandler_CreateOrder(t *testing.T) {
	orderSvc := new(MockOrderService)
	now := time.Now().UTC()

	stored := &order.Order{
		ID:            "ord-1",
		Cart:          cart.Cart{TotalCODPrice: 59.99},
		PaymentMethod: "COD",
		Status:        order.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	orderSvc.On("Create", mock.Anything, mock.Anything, mock.Anything, "COD").Return(stored, nil)

	h, _ := newTestHandler(t, orderSvc)

	body := `{"cart":{"items":[],"total_cod_price":59.99},"shipping":{"full_name":"Jane Doe","phone":"555-0100","address_line1":"1 Main St","city":"Austin","state":"TX","postal_code":"73301"},"payment_method":"COD"}`
	rec := doJSON(t, h.Routes(), http.MethodPost, "/api/orders", body, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID                  string   `json:"id"`
		PaymentInstructions []string `json:"payment_instructions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "ord-1", resp.ID)
	require.NotEmpty(t, resp.PaymentInstructions)
	assert.Contains(t, strings.Join(resp.PaymentInstructions, " "), "$59.99")
	orderSvc.AssertExpectations(t)
}

func TestHandler_GetOrder(t *testing.T) {
	orderSvc := new(MockOrderService)
	orderSvc.On("Get", mock.Anything, "missing").Return(nil, order.ErrOrderNotFound)

	h, _ := newTestHandler(t, orderSvc)

	rec := doJSON(t, h.Routes(), http.MethodGet, "/api/orders/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ListOrders(t *testing.T) {
	orderSvc := new(MockOrderService)
	orderSvc.On("List", mock.Anything).Return([]*order.Order{{ID: "a"}, {ID: "b"}}, nil)

	h, mgr := newTestHandler(t, orderSvc)
	routes := h.Routes()

	t.Run("RequiresAdmin", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodGet, "/api/orders", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("AdminToken", func(t *testing.T) {
		token, err := mgr.GenerateToken(auth.RoleAdmin)
		require.NoError(t, err)

		rec := doJSON(t, routes, http.MethodGet, "/api/orders", "", token)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp []order.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})
}

func TestHandler_UpdateOrderStatus(t *testing.T) {
	orderSvc := new(MockOrderService)
	orderSvc.On("UpdateStatus", mock.Anything, "ord-1", "shipped").
		Return(&order.Order{ID: "ord-1", Status: order.StatusShipped}, nil)
	orderSvc.On("UpdateStatus", mock.Anything, "ord-1", "teleported").
		Return(nil, order.ErrInvalidStatus)
	orderSvc.On("UpdateStatus", mock.Anything, "missing", "shipped").
		Return(nil, order.ErrOrderNotFound)

	h, mgr := newTestHandler(t, orderSvc)
	routes := h.Routes()

	token, err := mgr.GenerateToken(auth.RoleAdmin)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPatch, "/api/orders/ord-1", `{"status":"shipped"}`, token)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp order.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, order.StatusShipped, resp.Status)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPatch, "/api/orders/ord-1", `{"status":"teleported"}`, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPatch, "/api/orders/missing", `{"status":"shipped"}`, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("RequiresAdmin", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPatch, "/api/orders/ord-1", `{"status":"shipped"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_AdminLogin(t *testing.T) {
	h, _ := newTestHandler(t, new(MockOrderService))
	routes := h.Routes()

	t.Run("WrongPassword", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPost, "/api/admin/login", `{"password":"wrong"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		rec := doJSON(t, routes, http.MethodPost, "/api/admin/login", `{"password":"hunter2"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])
	})
}

func TestHandler_StorageFailureMapsTo500(t *testing.T) {
	orderSvc := new(MockOrderService)
	orderSvc.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, order.ErrStorageFailure)

	h, _ := newTestHandler(t, orderSvc)

	rec := doJSON(t, h.Routes(), http.MethodPost, "/api/orders", `{"cart":{"items":[]},"shipping":{}}`, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
