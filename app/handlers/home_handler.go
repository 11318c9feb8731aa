package handlers

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-digistore/app/db/seeders"
	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	productRepo repositories.CatalogRepositoryImpl
	bundleRepo  repositories.BundleRepositoryImpl
	render      *render.Render
}

func NewHomeHandler(productRepo repositories.CatalogRepositoryImpl, bundleRepo repositories.BundleRepositoryImpl, r *render.Render) *HomeHandler {
	return &HomeHandler{productRepo: productRepo, bundleRepo: bundleRepo, render: r}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.productRepo.GetFeaturedProducts(r.Context(), 4)
	if err != nil {
		log.Printf("Home: failed to load featured products: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to load catalog.",
		})
		return
	}

	bundles, err := h.bundleRepo.GetBundles(r.Context())
	if err != nil {
		log.Printf("Home: failed to load bundles: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to load catalog.",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"featured":     featured,
		"bundles":      bundles,
		"testimonials": seeders.Testimonials(),
	})
}
