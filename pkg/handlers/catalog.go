package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"sixwings/pkg/catalog"
)

type CatalogHandler struct {
	Service catalog.ServiceInterface
	Logger  *slog.Logger
}

func NewCatalogHandler(service catalog.ServiceInterface, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Logger, h.Service.Categories())
}

func (h *CatalogHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, ok := vars[muxVarCategory]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid category")
		return
	}

	writeJSON(w, h.Logger, h.Service.ProductsByCategory(category))
}

func (h *CatalogHandler) GetProductsBySubcategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, ok := vars[muxVarCategory]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid category")
		return
	}
	subcategory, ok := vars[muxVarSubcategory]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid subcategory")
		return
	}

	writeJSON(w, h.Logger, h.Service.ProductsBySubcategory(category, subcategory))
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	productID, ok := vars[muxVarProductID]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid product id")
		return
	}

	product, err := h.Service.ProductByID(productID)
	if err != nil {
		writeError(w, http.StatusNotFound, typeMessage, err.Error())
		return
	}

	writeJSON(w, h.Logger, product)
}
