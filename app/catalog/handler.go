package catalog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mytheresa/product-catalog/app/httpx"
	"github.com/mytheresa/product-catalog/models"
	"github.com/shopspring/decimal"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Product struct {
	PID       string    `json:"pid"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	FromPrice *float64  `json:"from_price,omitempty"`
	Category  *Category `json:"category,omitempty"`
}

type Image struct {
	Name            string `json:"name"`
	AlternativeText string `json:"alternative_text"`
	URL             string `json:"url"`
	Default         bool   `json:"default"`
}

type Line struct {
	SKU           string            `json:"sku"`
	Price         float64           `json:"price"`
	StockQuantity int               `json:"stock_quantity"`
	Weight        float64           `json:"weight"`
	IsActive      bool              `json:"is_active"`
	Attributes    map[string]string `json:"attributes"`
	Images        []Image           `json:"images"`
}

type ProductDetail struct {
	Product
	Description   *string `json:"description,omitempty"`
	SeasonalEvent string  `json:"seasonal_event,omitempty"`
	Lines         []Line  `json:"lines"`
}

type ProductProvider interface {
	GetFilteredProducts(ctx context.Context, offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
	GetByPID(ctx context.Context, pid string) (*models.Product, error)
}

type CatalogHandler struct {
	repo ProductProvider
}

func NewCatalogHandler(r ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	// Parse filters
	filters := models.ProductFilters{
		CategorySlug: r.URL.Query().Get("category"),
	}

	if priceStr := r.URL.Query().Get("price_lt"); priceStr != "" {
		if val, err := strconv.ParseFloat(priceStr, 64); err == nil {
			filters.PriceLessThan = &val
		}
	}

	if activeStr := r.URL.Query().Get("active"); activeStr != "" {
		if val, err := strconv.ParseBool(activeStr); err == nil {
			filters.ActiveOnly = val
		}
	}

	res, total, err := h.repo.GetFilteredProducts(r.Context(), offset, limit, filters)
	if err != nil {
		httpx.RepoError(w, r, err, "Failed to retrieve products")
		return
	}

	products := make([]Product, len(res))
	for i := range res {
		products[i] = toProduct(&res[i])
	}

	httpx.OK(w, Response{
		Total:    int(total),
		Products: products,
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	pid := r.PathValue("pid")

	product, err := h.repo.GetByPID(r.Context(), pid)
	if err != nil {
		if httpx.StatusFor(err) == http.StatusNotFound {
			httpx.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		httpx.RepoError(w, r, err, "Failed to retrieve product")
		return
	}

	// Map response
	lines := make([]Line, len(product.Lines))
	for i, l := range product.Lines {
		attributes := make(map[string]string, len(l.Attributes))
		for _, a := range l.Attributes {
			if a.AttributeValue == nil || a.AttributeValue.Attribute == nil {
				continue
			}
			attributes[a.AttributeValue.Attribute.Name] = a.AttributeValue.Value
		}

		images := make([]Image, len(l.Images))
		for j, img := range l.Images {
			images[j] = Image{
				Name:            img.Name,
				AlternativeText: img.AlternativeText,
				URL:             img.URL,
				Default:         img.DefaultImage,
			}
		}

		lines[i] = Line{
			SKU:           l.SKU.String(),
			Price:         l.Price.InexactFloat64(),
			StockQuantity: l.StockQuantity,
			Weight:        l.Weight,
			IsActive:      l.IsActive,
			Attributes:    attributes,
			Images:        images,
		}
	}

	detail := ProductDetail{
		Product:     toProduct(product),
		Description: product.Description,
		Lines:       lines,
	}
	if product.SeasonalEvent != nil {
		detail.SeasonalEvent = product.SeasonalEvent.Name
	}

	httpx.OK(w, detail)
}

func toProduct(p *models.Product) Product {
	out := Product{
		PID:  p.PID,
		Name: p.Name,
		Slug: p.Slug,
	}
	if p.Category != nil {
		out.Category = &Category{
			Name: p.Category.Name,
			Slug: p.Category.Slug,
		}
	}
	if price, ok := fromPrice(p.Lines); ok {
		f := price.InexactFloat64()
		out.FromPrice = &f
	}
	return out
}

// fromPrice is the lowest price among the active lines.
func fromPrice(lines []models.ProductLine) (decimal.Decimal, bool) {
	var lowest decimal.Decimal
	found := false
	for _, l := range lines {
		if !l.IsActive {
			continue
		}
		if !found || l.Price.LessThan(lowest) {
			lowest = l.Price
			found = true
		}
	}
	return lowest, found
}
