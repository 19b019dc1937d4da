package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mytheresa/product-catalog/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// --- Tests ---

func TestHandleGetProduct(t *testing.T) {
	sku := uuid.MustParse("6f1c0d52-5c1e-4a53-9a51-0d1b43b6f0a1")
	description := "Canvas upper"

	allMockProducts := []models.Product{
		{
			PID:         "PROD001",
			Name:        "Red Sneaker",
			Slug:        "red-sneaker",
			Description: &description,
			Category:    &models.Category{Name: "Shoes", Slug: "shoes"},
			SeasonalEvent: &models.SeasonalEvent{
				Name: "Winter Sale",
			},
			Lines: []models.ProductLine{
				{
					SKU:           sku,
					Price:         decimal.NewFromFloat(49.99),
					StockQuantity: 3,
					Weight:        0.8,
					IsActive:      true,
					Images: []models.ProductImage{
						{Name: "front", AlternativeText: "Front view", URL: "img/front.jpg", DefaultImage: true},
					},
					Attributes: []models.ProductLineAttribute{
						{AttributeValue: &models.AttributeValue{Value: "Large", Attribute: &models.Attribute{Name: "size"}}},
					},
				},
				{
					Price:    decimal.NewFromFloat(29.99),
					IsActive: false,
				},
			},
		},
		{
			PID:   "PROD100",
			Name:  "Plain Tee",
			Slug:  "plain-tee",
			Lines: []models.ProductLine{},
		},
	}

	testCases := []struct {
		name               string
		pid                string
		mockRepoSetup      func() *MockProductRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCall      func(t *testing.T, repo *MockProductRepo)
	}{
		{
			name: "Success with lines, images and attributes",
			pid:  "PROD001",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ProductDetail
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "PROD001", resp.PID)
				assert.Equal(t, "shoes", resp.Category.Slug)
				assert.Equal(t, "Winter Sale", resp.SeasonalEvent)
				assert.Equal(t, "Canvas upper", *resp.Description)
				assert.Equal(t, 49.99, *resp.FromPrice, "Inactive lines do not set the from price")
				assert.Len(t, resp.Lines, 2)
				assert.Equal(t, sku.String(), resp.Lines[0].SKU)
				assert.Equal(t, 49.99, resp.Lines[0].Price)
				assert.Equal(t, "Large", resp.Lines[0].Attributes["size"])
				assert.Len(t, resp.Lines[0].Images, 1)
				assert.True(t, resp.Lines[0].Images[0].Default)
			},
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				assert.Equal(t, "PROD001", repo.lastCalledPID)
			},
		},
		{
			name: "Product not found",
			pid:  "NONEXISTENT",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusNotFound,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "Product not found", errResp["error"])
			},
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				assert.Equal(t, "NONEXISTENT", repo.lastCalledPID)
			},
		},
		{
			name: "Repository internal error",
			pid:  "PROD-ERR",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{Err: errors.New("db connection lost")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "Failed to retrieve product", errResp["error"])
			},
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				assert.Equal(t, "PROD-ERR", repo.lastCalledPID)
			},
		},
		{
			name: "Product with no lines",
			pid:  "PROD100",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ProductDetail
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "PROD100", resp.PID)
				assert.Nil(t, resp.Category)
				assert.Nil(t, resp.FromPrice)
				assert.Empty(t, resp.Lines)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := tc.mockRepoSetup()
			handler := NewCatalogHandler(mockRepo)
			req := httptest.NewRequest("GET", "/catalog/"+tc.pid, nil)
			req.SetPathValue("pid", tc.pid)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetProduct(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}

			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}
