package handlers

import (
	"log/slog"
	"net/http"

	"sixwings/pkg/cart"
	"sixwings/pkg/claims"
)

type CartItemForm struct {
	ProductID string `json:"produtoId"`
	Quantity  int    `json:"quantidade"`
}

type CartHandler struct {
	Service cart.ServiceInterface
	Logger  *slog.Logger
}

func NewCartHandler(service cart.ServiceInterface, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	userCart, err := h.Service.Get(c.User.ID)
	if err != nil {
		h.Logger.Error("get cart", "error", err, "user", c.User.ID)
		writeError(w, http.StatusInternalServerError, typeError, "failed to load cart")
		return
	}

	writeJSON(w, h.Logger, userCart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	var req CartItemForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	userCart, err := h.Service.AddProduct(c.User.ID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, userCart); ok {
		h.Logger.Info("cart item added", "user", c.User.ID, "product", req.ProductID)
	}
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	var req CartItemForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	userCart, err := h.Service.SetQuantity(c.User.ID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	writeJSON(w, h.Logger, userCart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	var req CartItemForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	userCart, err := h.Service.RemoveProduct(c.User.ID, req.ProductID)
	if err != nil {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	writeJSON(w, h.Logger, userCart)
}
