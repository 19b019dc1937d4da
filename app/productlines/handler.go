package productlines

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/mytheresa/product-catalog/app/httpx"
	"github.com/mytheresa/product-catalog/models"
	"github.com/shopspring/decimal"
)

type ProductFinder interface {
	GetByPID(ctx context.Context, pid string) (*models.Product, error)
}

type LineStore interface {
	GetBySKU(ctx context.Context, sku uuid.UUID) (*models.ProductLine, error)
	CreateLine(ctx context.Context, line *models.ProductLine) error
	DeleteLine(ctx context.Context, id uint) error
}

type ImageStore interface {
	AddImage(ctx context.Context, image *models.ProductImage) error
	SetDefaultImage(ctx context.Context, lineID, imageID uint) error
}

type LineResponse struct {
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
	Order int     `json:"order"`
}

type ImageResponse struct {
	ID      uint   `json:"id"`
	URL     string `json:"url"`
	Default bool   `json:"default"`
}

type ProductLineHandler struct {
	products ProductFinder
	lines    LineStore
	images   ImageStore
}

func NewProductLineHandler(p ProductFinder, l LineStore, i ImageStore) *ProductLineHandler {
	return &ProductLineHandler{products: p, lines: l, images: i}
}

// HandleCreate adds a product line to the product named by the pid path
// value. The SKU is generated unless the body carries one.
func (h *ProductLineHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SKU           string          `json:"sku"`
		Price         decimal.Decimal `json:"price"`
		StockQuantity int             `json:"stock_quantity"`
		IsActive      bool            `json:"is_active"`
		Order         int             `json:"order"`
		Weight        float64         `json:"weight"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	line := &models.ProductLine{
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		IsActive:      input.IsActive,
		Order:         input.Order,
		Weight:        input.Weight,
	}
	if input.SKU != "" {
		sku, err := uuid.Parse(input.SKU)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid sku")
			return
		}
		line.SKU = sku
	}

	product, err := h.products.GetByPID(r.Context(), r.PathValue("pid"))
	if err != nil {
		httpx.RepoError(w, r, err, "Failed to create product line")
		return
	}
	line.ProductID = product.ID

	if err := h.lines.CreateLine(r.Context(), line); err != nil {
		httpx.RepoError(w, r, err, "Failed to create product line")
		return
	}

	httpx.JSON(w, http.StatusCreated, LineResponse{
		SKU:   line.SKU.String(),
		Price: line.Price.InexactFloat64(),
		Order: line.Order,
	})
}

func (h *ProductLineHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	line, ok := h.lookupLine(w, r)
	if !ok {
		return
	}

	if err := h.lines.DeleteLine(r.Context(), line.ID); err != nil {
		httpx.RepoError(w, r, err, "Failed to delete product line")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAddImage attaches an image to the line named by the sku path value.
// A second default image for the same line is refused with 409.
func (h *ProductLineHandler) HandleAddImage(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name            string `json:"name"`
		AlternativeText string `json:"alternative_text"`
		URL             string `json:"url"`
		Default         bool   `json:"default"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	line, ok := h.lookupLine(w, r)
	if !ok {
		return
	}

	image := &models.ProductImage{
		Name:            input.Name,
		AlternativeText: input.AlternativeText,
		URL:             input.URL,
		DefaultImage:    input.Default,
		ProductLineID:   line.ID,
	}
	if err := h.images.AddImage(r.Context(), image); err != nil {
		httpx.RepoError(w, r, err, "Failed to add image")
		return
	}

	httpx.JSON(w, http.StatusCreated, ImageResponse{
		ID:      image.ID,
		URL:     image.URL,
		Default: image.DefaultImage,
	})
}

func (h *ProductLineHandler) HandleSetDefaultImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid image id")
		return
	}

	line, ok := h.lookupLine(w, r)
	if !ok {
		return
	}

	if err := h.images.SetDefaultImage(r.Context(), line.ID, uint(imageID)); err != nil {
		httpx.RepoError(w, r, err, "Failed to set default image")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductLineHandler) lookupLine(w http.ResponseWriter, r *http.Request) (*models.ProductLine, bool) {
	sku, err := uuid.Parse(r.PathValue("sku"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid sku")
		return nil, false
	}

	line, err := h.lines.GetBySKU(r.Context(), sku)
	if err != nil {
		httpx.RepoError(w, r, err, "Failed to retrieve product line")
		return nil, false
	}
	return line, true
}
