package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-digistore/app/services"
	"github.com/gorilla/mux"
)

func bundleFormFromRequest(r *http.Request) services.BundleForm {
	return services.BundleForm{
		Title:         r.PostFormValue("title"),
		Description:   r.PostFormValue("description"),
		Price:         r.PostFormValue("price"),
		OriginalPrice: r.PostFormValue("original_price"),
		ProductIDs:    r.PostForm["product_ids"],
	}
}

func (h *AdminHandler) saveBundle(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseForm(); err != nil {
		log.Printf("saveBundle: error parsing form: %v", err)
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Failed to parse bundle form.",
		})
		return
	}

	form := bundleFormFromRequest(r)

	bundle, fieldErrors, err := h.catalogSvc.SaveBundle(r.Context(), id, form)
	if err != nil {
		if errors.Is(err, services.ErrBundleNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"status":  "error",
				"message": "Bundle not found",
			})
			return
		}
		log.Printf("saveBundle: failed to save bundle %q: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to save bundle.",
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
		"status": "success",
		"bundle": bundle,
	})
}

func (h *AdminHandler) AddBundle(w http.ResponseWriter, r *http.Request) {
	h.saveBundle(w, r, "")
}

func (h *AdminHandler) UpdateBundle(w http.ResponseWriter, r *http.Request) {
	h.saveBundle(w, r, mux.Vars(r)["id"])
}

func (h *AdminHandler) DeleteBundle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalogSvc.DeleteBundle(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrBundleNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"status":  "error",
				"message": "Bundle not found",
			})
			return
		}
		log.Printf("DeleteBundle: failed to delete bundle %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to delete bundle.",
		})
		return
	}

	// Ownership already granted from this bundle is intentionally left in
	// the ledger; the library simply resolves it to nothing.
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Bundle deleted.",
	})
}
