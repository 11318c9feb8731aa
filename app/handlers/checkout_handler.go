package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-digistore/app/db/seeders"
	"github.com/Rakhulsr/go-digistore/app/services"
	"github.com/Rakhulsr/go-digistore/app/utils/format"
	"github.com/Rakhulsr/go-digistore/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	checkoutSvc  *services.CheckoutService
	sessionStore sessions.SessionStore
	render       *render.Render
}

func NewCheckoutHandler(checkoutSvc *services.CheckoutService, sessionStore sessions.SessionStore, r *render.Render) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc, sessionStore: sessionStore, render: r}
}

// GetCheckout resolves the target and returns the order summary for the
// form stage. An unknown id never reaches the state machine.
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetID := vars["id"]

	checkout, err := h.checkoutSvc.Begin(r.Context(), assetID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"status":  "error",
				"message": "Item not found",
			})
			return
		}
		log.Printf("GetCheckout: failed to resolve item %s: %v", assetID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to start checkout.",
		})
		return
	}

	item := checkout.Item()
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"stage": checkout.Stage(),
		"item": map[string]interface{}{
			"id":           item.AssetID,
			"type":         item.Type,
			"title":        item.Title,
			"price":        item.Price,
			"displayPrice": format.FormatUSD(item.Price),
			"image":        item.Image,
		},
	})
}

// PostCheckout runs one full purchase: resolve target, validate the form,
// drive the processing steps, commit on success. A validation failure
// leaves nothing written and reports the field errors.
func (h *CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetID := vars["id"]

	if err := r.ParseForm(); err != nil {
		log.Printf("PostCheckout: error parsing form: %v", err)
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Failed to parse checkout form.",
		})
		return
	}

	checkout, err := h.checkoutSvc.Begin(r.Context(), assetID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"status":  "error",
				"message": "Item not found",
			})
			return
		}
		log.Printf("PostCheckout: failed to resolve item %s: %v", assetID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to start checkout.",
		})
		return
	}

	form := services.CheckoutForm{
		Name:       r.PostFormValue("name"),
		Email:      r.PostFormValue("email"),
		Method:     services.PaymentMethod(r.PostFormValue("method")),
		CardNumber: r.PostFormValue("card_number"),
		Expiry:     r.PostFormValue("expiry"),
		CVC:        r.PostFormValue("cvc"),
		UPIID:      r.PostFormValue("upi_id"),
	}

	fieldErrors, err := h.checkoutSvc.Submit(checkout, form)
	if err != nil {
		if errors.Is(err, services.ErrFormValidation) {
			_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"status": "error",
				"stage":  checkout.Stage(),
				"errors": fieldErrors,
			})
			return
		}
		log.Printf("PostCheckout: submit failed for item %s: %v", assetID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Failed to submit checkout.",
		})
		return
	}

	order, err := h.checkoutSvc.Process(r.Context(), checkout)
	if err != nil {
		log.Printf("PostCheckout: processing failed for item %s: %v", assetID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Payment processing failed.",
		})
		return
	}

	// The buyer session is tied to the built-in account after a purchase so
	// subsequent requests resolve as authenticated.
	if err := h.sessionStore.SetUserID(w, r, seeders.BuiltInUser().ID); err != nil {
		log.Printf("PostCheckout: failed to save session: %v", err)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"status":          "success",
		"stage":           checkout.Stage(),
		"processingSteps": services.ProcessingSteps,
		"order":           order,
	})
}
