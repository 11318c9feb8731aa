package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-digistore/app/helpers"
	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/Rakhulsr/go-digistore/app/services"
	"github.com/Rakhulsr/go-digistore/app/utils/format"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type DashboardHandler struct {
	librarySvc  *services.LibraryService
	productRepo repositories.CatalogRepositoryImpl
	render      *render.Render
}

func NewDashboardHandler(librarySvc *services.LibraryService, productRepo repositories.CatalogRepositoryImpl, r *render.Render) *DashboardHandler {
	return &DashboardHandler{librarySvc: librarySvc, productRepo: productRepo, render: r}
}

type libraryAsset struct {
	models.Product
	FormatLabel string `json:"formatLabel"`
	FileName    string `json:"fileName"`
}

// Dashboard returns the buyer profile and the derived owned-asset library.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := helpers.GetSession(r)

	profile, err := h.librarySvc.Profile(r.Context(), session.User)
	if err != nil {
		log.Printf("Dashboard: failed to resolve profile: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to load dashboard.",
		})
		return
	}

	owned, err := h.librarySvc.OwnedAssets(r.Context(), session.User)
	if err != nil {
		log.Printf("Dashboard: failed to derive library: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to load dashboard.",
		})
		return
	}

	assets := make([]libraryAsset, 0, len(owned))
	for _, p := range owned {
		assets = append(assets, libraryAsset{
			Product:     p,
			FormatLabel: helpers.FormatLabel(p.Category),
			FileName:    helpers.AssetFileName(p),
		})
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"profile":       profile,
		"authenticated": session.Authenticated,
		"assets":        assets,
	})
}

func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.librarySvc.History(r.Context())
	if err != nil {
		log.Printf("History: failed to load purchase history: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to load purchase history.",
		})
		return
	}

	records := make([]map[string]interface{}, 0, len(history))
	for _, order := range history {
		records = append(records, map[string]interface{}{
			"orderId":      order.OrderID,
			"date":         order.Date,
			"title":        order.Title,
			"price":        order.Price,
			"displayPrice": format.FormatUSD(order.Price),
			"status":       order.Status,
			"method":       order.Method,
		})
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"history": records,
	})
}

// DownloadAsset streams the simulated license document for an owned
// product. Assets outside the derived library are not served.
func (h *DashboardHandler) DownloadAsset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]
	session := helpers.GetSession(r)

	owns, err := h.librarySvc.Owns(r.Context(), session.User, productID)
	if err != nil {
		log.Printf("DownloadAsset: ownership check failed for product %s: %v", productID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to prepare download.",
		})
		return
	}
	if !owns {
		_ = h.render.JSON(w, http.StatusForbidden, map[string]interface{}{
			"status":  "error",
			"message": "You must purchase this asset before downloading it.",
		})
		return
	}

	product, err := h.productRepo.GetProductByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("DownloadAsset: failed to load product %s: %v", productID, err)
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
			"status":  "error",
			"message": "Product not found",
		})
		return
	}

	profile, err := h.librarySvc.Profile(r.Context(), session.User)
	if err != nil {
		log.Printf("DownloadAsset: failed to resolve licensee: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to prepare download.",
		})
		return
	}

	content := h.librarySvc.LicenseDocument(*product, profile.Name)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", helpers.AssetFileName(*product)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}
