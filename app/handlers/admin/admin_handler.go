package admin

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/Rakhulsr/go-digistore/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	catalogSvc  *services.CatalogService
	productRepo repositories.CatalogRepositoryImpl
	bundleRepo  repositories.BundleRepositoryImpl
	render      *render.Render
}

func NewAdminHandler(
	catalogSvc *services.CatalogService,
	productRepo repositories.CatalogRepositoryImpl,
	bundleRepo repositories.BundleRepositoryImpl,
	r *render.Render,
) *AdminHandler {
	return &AdminHandler{
		catalogSvc:  catalogSvc,
		productRepo: productRepo,
		bundleRepo:  bundleRepo,
		render:      r,
	}
}

func (h *AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		log.Printf("GetProducts: failed to load product list: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to load product list.",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

func (h *AdminHandler) GetBundles(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.bundleRepo.GetBundles(r.Context())
	if err != nil {
		log.Printf("GetBundles: failed to load bundle list: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to load bundle list.",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"bundles": bundles,
	})
}
