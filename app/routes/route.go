package routes

import (
	"log"
	"strconv"
	"time"

	"github.com/Rakhulsr/go-digistore/app/configs"
	"github.com/Rakhulsr/go-digistore/app/handlers"
	adminHandlers "github.com/Rakhulsr/go-digistore/app/handlers/admin"
	"github.com/Rakhulsr/go-digistore/app/middlewares"
	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/Rakhulsr/go-digistore/app/services"
	"github.com/Rakhulsr/go-digistore/app/storage"
	"github.com/Rakhulsr/go-digistore/app/utils/renderer"
	"github.com/Rakhulsr/go-digistore/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// The original flow paces the simulated gateway at 800ms per step.
const defaultStepDelay = 800 * time.Millisecond

func checkoutStepDelay(env configs.ENV) time.Duration {
	if env.CHECKOUT_STEP_DELAY_MS == "" {
		return defaultStepDelay
	}
	ms, err := strconv.Atoi(env.CHECKOUT_STEP_DELAY_MS)
	if err != nil || ms < 0 {
		log.Printf("checkoutStepDelay: invalid CHECKOUT_STEP_DELAY_MS %q, using default", env.CHECKOUT_STEP_DELAY_MS)
		return defaultStepDelay
	}
	return time.Duration(ms) * time.Millisecond
}

func NewRouter(db *gorm.DB, env configs.ENV) *mux.Router {
	store := storage.NewGormStore(db)
	productRepo := repositories.NewCatalogRepository(store)
	bundleRepo := repositories.NewBundleRepository(store)
	ledgerRepo := repositories.NewLedgerRepository(store)

	render := renderer.New()
	validate := validator.New()

	checkoutSvc := services.NewCheckoutService(productRepo, bundleRepo, ledgerRepo, validate, checkoutStepDelay(env))
	librarySvc := services.NewLibraryService(productRepo, bundleRepo, ledgerRepo)
	catalogSvc := services.NewCatalogService(productRepo, bundleRepo, validate)

	keyPairs := [][]byte{[]byte("digistore-dev-session-key")}
	sessionKeys, err := configs.LoadSessionKeysFromEnv(env)
	if err != nil {
		log.Printf("Warning: session keys unavailable (%v), using an ephemeral dev key.", err)
	} else {
		keyPairs = [][]byte{sessionKeys.AuthKey, sessionKeys.EncKey}
	}
	sessionStore := sessions.NewCookieSessionStore(keyPairs...)

	homeHandler := handlers.NewHomeHandler(productRepo, bundleRepo, render)
	productHandler := handlers.NewProductHandler(productRepo, bundleRepo, catalogSvc, render)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, sessionStore, render)
	dashboardHandler := handlers.NewDashboardHandler(librarySvc, productRepo, render)
	adminHandler := adminHandlers.NewAdminHandler(catalogSvc, productRepo, bundleRepo, render)

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

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(render))
	if env.APP_ENV == "production" {
		adminRouter.Use(csrf.Protect(keyPairs[0], csrf.Secure(true)))
	}

	adminRouter.HandleFunc("/products", adminHandler.GetProducts).Methods("GET")
	adminRouter.HandleFunc("/products", adminHandler.AddProduct).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", adminHandler.UpdateProduct).Methods("POST", "PUT")
	adminRouter.HandleFunc("/products/{id}", adminHandler.DeleteProduct).Methods("DELETE")

	adminRouter.HandleFunc("/bundles", adminHandler.GetBundles).Methods("GET")
	adminRouter.HandleFunc("/bundles", adminHandler.AddBundle).Methods("POST")
	adminRouter.HandleFunc("/bundles/{id}", adminHandler.UpdateBundle).Methods("POST", "PUT")
	adminRouter.HandleFunc("/bundles/{id}", adminHandler.DeleteBundle).Methods("DELETE")

	return router
}
