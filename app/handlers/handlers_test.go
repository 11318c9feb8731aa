package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Rakhulsr/go-digistore/app/middlewares"
	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/Rakhulsr/go-digistore/app/services"
	"github.com/Rakhulsr/go-digistore/app/storage"
	"github.com/Rakhulsr/go-digistore/app/utils/renderer"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// fakeSessionStore keeps the session user id in memory so handler tests do
// not depend on cookie signing.
type fakeSessionStore struct {
	userID string
}

func (f *fakeSessionStore) GetUserID(r *http.Request) string {
	return f.userID
}

func (f *fakeSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	f.userID = userID
	return nil
}

func (f *fakeSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	f.userID = ""
	return nil
}

func newTestRouter(t *testing.T) (*mux.Router, *fakeSessionStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	productRepo := repositories.NewCatalogRepository(store)
	bundleRepo := repositories.NewBundleRepository(store)
	ledgerRepo := repositories.NewLedgerRepository(store)

	render := renderer.New()
	validate := validator.New()

	checkoutSvc := services.NewCheckoutService(productRepo, bundleRepo, ledgerRepo, validate, 0)
	librarySvc := services.NewLibraryService(productRepo, bundleRepo, ledgerRepo)
	catalogSvc := services.NewCatalogService(productRepo, bundleRepo, validate)

	sessionStore := &fakeSessionStore{}

	homeHandler := NewHomeHandler(productRepo, bundleRepo, render)
	productHandler := NewProductHandler(productRepo, bundleRepo, catalogSvc, render)
	checkoutHandler := NewCheckoutHandler(checkoutSvc, sessionStore, render)
	dashboardHandler := NewDashboardHandler(librarySvc, productRepo, render)

	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.SessionUserMiddleware(sessionStore))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/products", productHandler.Products).Methods("GET")
	router.HandleFunc("/products/{id}", productHandler.ProductDetail).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", productHandler.SubmitReview).Methods("POST")
	router.HandleFunc("/checkout/{id}", checkoutHandler.GetCheckout).Methods("GET")
	router.HandleFunc("/checkout/{id}", checkoutHandler.PostCheckout).Methods("POST")
	router.HandleFunc("/dashboard", dashboardHandler.Dashboard).Methods("GET")
	router.HandleFunc("/dashboard/history", dashboardHandler.History).Methods("GET")
	router.HandleFunc("/dashboard/assets/{id}/download", dashboardHandler.DownloadAsset).Methods("GET")

	return router, sessionStore
}

func doRequest(router *mux.Router, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func checkoutForm() url.Values {
	return url.Values{
		"name":        {"Alex Rivera"},
		"email":       {"alex@aashok.com"},
		"method":      {"card"},
		"card_number": {"4242424242424242"},
		"expiry":      {"12/30"},
		"cvc":         {"123"},
	}
}
