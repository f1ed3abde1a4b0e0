package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"sixwings/pkg/claims"
	"sixwings/pkg/order"
	"sixwings/pkg/user"
)

type OrderHandler struct {
	Service order.ServiceInterface
	Logger  *slog.Logger
}

func NewOrderHandler(service order.ServiceInterface, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	newOrder, err := h.Service.Checkout(c.User.ID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, typeError, err.Error())
		case errors.Is(err, user.ErrInsufficientPoints):
			writeError(w, http.StatusUnprocessableEntity, typeError, err.Error())
		default:
			h.Logger.Error("checkout", "error", err, "user", c.User.ID)
			writeError(w, http.StatusInternalServerError, typeError, "checkout failed")
		}
		return
	}

	if ok := writeJSON(w, h.Logger, newOrder); ok {
		h.Logger.Info("checkout", "user", c.User.ID, "order", newOrder.ID, "points", newOrder.TotalPoints)
	}
}

func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	writeJSON(w, h.Logger, h.Service.GetByUser(c.User.ID))
}
