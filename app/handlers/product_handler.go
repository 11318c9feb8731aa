package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-digistore/app/helpers"
	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/Rakhulsr/go-digistore/app/services"
	"github.com/Rakhulsr/go-digistore/app/utils/calc"
	"github.com/Rakhulsr/go-digistore/app/utils/format"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	productRepo repositories.CatalogRepositoryImpl
	bundleRepo  repositories.BundleRepositoryImpl
	catalogSvc  *services.CatalogService
	render      *render.Render
}

func NewProductHandler(
	productRepo repositories.CatalogRepositoryImpl,
	bundleRepo repositories.BundleRepositoryImpl,
	catalogSvc *services.CatalogService,
	r *render.Render,
) *ProductHandler {
	return &ProductHandler{productRepo: productRepo, bundleRepo: bundleRepo, catalogSvc: catalogSvc, render: r}
}

// Products lists the catalog with an optional category filter and a
// case-insensitive title search. Bundles are included unless a concrete
// product category is selected; "Bundles" narrows to bundles only.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	categoryParam := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	category := models.Category("")
	if categoryParam != "" && categoryParam != "All" && categoryParam != "Bundles" {
		category = models.Category(categoryParam)
		if !category.Valid() {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"status":  "error",
				"message": "Unknown category.",
			})
			return
		}
	}

	products := []models.Product{}
	var err error
	if categoryParam != "Bundles" {
		products, err = h.productRepo.SearchProducts(r.Context(), category, query)
		if err != nil {
			log.Printf("Products: failed to search products: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
				"status":  "error",
				"message": "Failed to load products.",
			})
			return
		}
	}

	bundles := []models.Bundle{}
	if categoryParam == "" || categoryParam == "All" || categoryParam == "Bundles" {
		bundles, err = h.bundleRepo.SearchBundles(r.Context(), query)
		if err != nil {
			log.Printf("Products: failed to search bundles: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
				"status":  "error",
				"message": "Failed to load bundles.",
			})
			return
		}
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"bundles":  bundles,
		"category": categoryParam,
		"query":    query,
	})
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	product, err := h.productRepo.GetProductByID(r.Context(), productID)
	if err != nil {
		log.Printf("ProductDetail: failed to load product %s: %v", productID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to load product.",
		})
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
			"status":  "error",
			"message": "Product not found",
		})
		return
	}

	relevantBundles, err := h.bundleRepo.GetBundlesContaining(r.Context(), product.ID)
	if err != nil {
		log.Printf("ProductDetail: failed to load bundles for product %s: %v", productID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to load product.",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product":              product,
		"displayPrice":         format.FormatUSD(product.Price),
		"displayOriginalPrice": format.FormatUSD(product.OriginalPrice),
		"discountPercent":      calc.DiscountPercent(product.Price, product.OriginalPrice),
		"bundles":              relevantBundles,
	})
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ProductHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	var req reviewRequest
	if err := helpers.DecodeJSONBody(w, r, &req); err != nil {
		log.Printf("SubmitReview: error decoding JSON body: %v", err)
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Invalid request payload.",
		})
		return
	}

	session := helpers.GetSession(r)

	product, err := h.catalogSvc.SubmitReview(r.Context(), productID, session.User, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"status":  "error",
				"message": "Product not found",
			})
		case errors.Is(err, services.ErrInvalidReview):
			_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"status":  "error",
				"message": err.Error(),
			})
		default:
			log.Printf("SubmitReview: failed to submit review for product %s: %v", productID, err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
				"status":  "error",
				"message": "Failed to submit review.",
			})
		}
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"product": product,
	})
}
