package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Yalanday/test-selsup/app/controller"
)

type Controllers struct {
	Catalog *controller.CatalogController
	Editor  *controller.EditorController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes builds the HTTP handler; exportTimeout bounds the PDF route, which
// outlives the default request timeout
func SetupRoutes(controllers *Controllers, exportTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Ping endpoint
	r.Get("/ping", pingHandler)

	// Catalog page and export
	r.Get("/", controllers.Catalog.Page)
	r.Get("/catalog/render", controllers.Catalog.RenderCatalog)
	r.With(middleware.Timeout(exportTimeout+5*time.Second)).Get("/catalog/export.pdf", controllers.Catalog.ExportPDF)

	// Products
	r.Get("/api/products", controllers.Catalog.ListProducts)
	r.Post("/products/{id}/select", controllers.Catalog.SelectProduct)
	r.Get("/products/{id}/image", controllers.Catalog.ProductImage)

	// Editor
	r.Get("/api/editor", controllers.Editor.GetEditor)
	r.Route("/editor", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Post("/params/{paramId}", controllers.Editor.SetParamValue)
		r.Post("/colors", controllers.Editor.AddColor)
		r.Post("/colors/{colorId}", controllers.Editor.SetColorName)
		r.Post("/colors/{colorId}/delete", controllers.Editor.RemoveColor)
		r.Post("/commit", controllers.Editor.Commit)
	})

	return r
}
