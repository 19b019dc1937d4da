package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mytheresa/product-catalog/app/catalog"
	"github.com/mytheresa/product-catalog/app/categories"
	"github.com/mytheresa/product-catalog/app/productlines"
	"github.com/mytheresa/product-catalog/models"
	"gorm.io/gorm"
)

// NewRouter wires the repositories into the HTTP handlers.
func NewRouter(db *gorm.DB, l *slog.Logger) http.Handler {
	products := models.NewProductsRepository(db)
	lines := models.NewProductLinesRepository(db)
	images := models.NewProductImagesRepository(db)

	catalogHandler := catalog.NewCatalogHandler(products)
	categoryHandler := categories.NewCategoryHandler(models.NewCategoriesRepository(db))
	lineHandler := productlines.NewProductLineHandler(products, lines, images)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /catalog/{pid}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("POST /categories", categoryHandler.HandleCreate)
	mux.HandleFunc("DELETE /categories/{slug}", categoryHandler.HandleDelete)
	mux.HandleFunc("POST /products/{pid}/lines", lineHandler.HandleCreate)
	mux.HandleFunc("DELETE /product-lines/{sku}", lineHandler.HandleDelete)
	mux.HandleFunc("POST /product-lines/{sku}/images", lineHandler.HandleAddImage)
	mux.HandleFunc("PUT /product-lines/{sku}/images/{id}/default", lineHandler.HandleSetDefaultImage)

	return logRequests(l, mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(l *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		l.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
