package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"codmart-be/internal/auth"
	"codmart-be/internal/cart"
	"codmart-be/internal/catalog"
	"codmart-be/internal/metrics"
	"codmart-be/internal/middleware"
	"codmart-be/internal/order"
	"codmart-be/internal/payment"
	"codmart-be/internal/pricing"
)

const apiVersion = "1.0.0"

// Handler exposes the catalog, cart and order services over REST.
type Handler struct {
	catalogSvc catalog.Service
	cartSvc    cart.Service
	orderSvc   order.Service
	authMgr    *auth.Manager
}

func NewHandler(catalogSvc catalog.Service, cartSvc cart.Service, orderSvc order.Service, authMgr *auth.Manager) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		cartSvc:    cartSvc,
		orderSvc:   orderSvc,
		authMgr:    authMgr,
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	adminOnly := middleware.AdminOnly(h.authMgr)

	mux.HandleFunc("GET /api/{$}", h.handleRoot)
	mux.HandleFunc("POST /api/amazon/lookup", h.handleLookup)
	mux.HandleFunc("GET /api/products/{asin}", h.handleGetProduct)
	mux.HandleFunc("POST /api/cart", h.handleCalculateCart)
	mux.HandleFunc("POST /api/orders", h.handleCreateOrder)
	mux.HandleFunc("GET /api/orders/{id}", h.handleGetOrder)
	mux.Handle("GET /api/orders", adminOnly(http.HandlerFunc(h.handleListOrders)))
	mux.Handle("PATCH /api/orders/{id}", adminOnly(http.HandlerFunc(h.handleUpdateOrderStatus)))
	mux.HandleFunc("POST /api/admin/login", h.handleAdminLogin)
	mux.Handle("GET /metrics", metrics.Handler())

	return mux
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Amazon COD API",
		"version": apiVersion,
	})
}

type lookupRequest struct {
	URL  string `json:"url"`
	ASIN string `json:"asin"`
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.catalogSvc.Lookup(r.Context(), req.ASIN, req.URL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pricing.Price(*product))
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogSvc.Lookup(r.Context(), r.PathValue("asin"), "")
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pricing.Price(*product))
}

type cartRequest struct {
	Items []cart.ItemInput `json:"items"`
}

func (h *Handler) handleCalculateCart(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	built, err := h.cartSvc.BuildCart(r.Context(), req.Items)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, built)
}

type createOrderRequest struct {
	Cart          cart.Cart          `json:"cart"`
	Shipping      order.ShippingInfo `json:"shipping"`
	PaymentMethod string             `json:"payment_method"`
}

type createOrderResponse struct {
	*order.Order
	PaymentInstructions []string `json:"payment_instructions"`
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.orderSvc.Create(r.Context(), req.Cart, req.Shipping, req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}

	instructions := payment.InjectVariables(
		payment.GetInstructions(created.PaymentMethod),
		payment.InstructionVars{
			"amount": fmt.Sprintf("$%.2f", created.Cart.TotalCODPrice),
		},
	)

	writeJSON(w, http.StatusOK, createOrderResponse{
		Order:               created,
		PaymentInstructions: instructions,
	})
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orderSvc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

type updateOrderRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.orderSvc.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !h.authMgr.VerifyAdminPassword(req.Password) {
		writeJSONError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.authMgr.GenerateToken(auth.RoleAdmin)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
