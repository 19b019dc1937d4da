package categories

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mytheresa/product-catalog/app/httpx"
	"github.com/mytheresa/product-catalog/models"
)

type CategoryResponse struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories(r.Context())
	if err != nil {
		httpx.RepoError(w, r, err, "Failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			Name:     c.Name,
			Slug:     c.Slug,
			IsActive: c.IsActive,
			ParentID: c.ParentID,
		}
	}

	httpx.OK(w, response)
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Slug     string `json:"slug"`
		IsActive bool   `json:"is_active"`
		Parent   string `json:"parent"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" || input.Slug == "" {
		httpx.Error(w, http.StatusBadRequest, "Missing name or slug")
		return
	}

	category := &models.Category{
		Name:     input.Name,
		Slug:     input.Slug,
		IsActive: input.IsActive,
	}

	if input.Parent != "" {
		parent, err := h.repo.GetBySlug(r.Context(), input.Parent)
		if err != nil {
			if httpx.StatusFor(err) == http.StatusNotFound {
				httpx.Error(w, http.StatusUnprocessableEntity, "Parent category not found")
				return
			}
			httpx.RepoError(w, r, err, "Failed to create category")
			return
		}
		category.ParentID = &parent.ID
	}

	if err := h.repo.CreateCategory(r.Context(), category); err != nil {
		httpx.RepoError(w, r, err, "Failed to create category")
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{
		"message": "Category created successfully",
	})
}

// HandleDelete removes the category named by the slug path value. Categories
// that still have children are refused with 409.
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	category, err := h.repo.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		httpx.RepoError(w, r, err, "Failed to delete category")
		return
	}

	if err := h.repo.DeleteCategory(r.Context(), category.ID); err != nil {
		httpx.RepoError(w, r, err, "Failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
