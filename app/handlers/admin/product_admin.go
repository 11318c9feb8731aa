package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/services"
	"github.com/gorilla/mux"
)

func productFormFromRequest(r *http.Request) services.ProductForm {
	return services.ProductForm{
		Title:         r.PostFormValue("title"),
		Description:   r.PostFormValue("description"),
		Category:      models.Category(r.PostFormValue("category")),
		Price:         r.PostFormValue("price"),
		OriginalPrice: r.PostFormValue("original_price"),
		Image:         r.PostFormValue("image"),
		Features:      r.PostFormValue("features"),
		DownloadURL:   r.PostFormValue("download_url"),
		Author:        r.PostFormValue("author"),
		PageCount:     r.PostFormValue("page_count"),
	}
}

func (h *AdminHandler) saveProduct(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseForm(); err != nil {
		log.Printf("saveProduct: error parsing form: %v", err)
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Failed to parse product form.",
		})
		return
	}

	form := productFormFromRequest(r)

	product, fieldErrors, err := h.catalogSvc.SaveProduct(r.Context(), id, form)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"status":  "error",
				"message": "Product not found",
			})
			return
		}
		log.Printf("saveProduct: failed to save product %q: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to save product.",
		})
		return
	}
	if fieldErrors != nil {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"status": "error",
			"errors": fieldErrors,
		})
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	_ = h.render.JSON(w, status, map[string]interface{}{
		"status":  "success",
		"product": product,
	})
}

func (h *AdminHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	h.saveProduct(w, r, "")
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	h.saveProduct(w, r, mux.Vars(r)["id"])
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalogSvc.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"status":  "error",
				"message": "Product not found",
			})
			return
		}
		log.Printf("DeleteProduct: failed to delete product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to delete product.",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Product deleted. It has also been removed from any bundles.",
	})
}
