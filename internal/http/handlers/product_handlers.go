package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	models "github.com/tarunbommali/ekart/internal/models"
	repo "github.com/tarunbommali/ekart/internal/repo"
)

func toResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} errorResponse
// @Router / [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		Name:     req.Name,
		Price:    float64(req.Price),
		Quantity: int(req.Quantity),
	}
	created, err := productRepo.Create(r.Context(), product)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create product")
		return
	}
	listCache.Invalidate(r.Context())

	_ = writeJSON(w, http.StatusCreated, toResponse(created))
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {object} errorResponse
// @Router / [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, ok := listCache.Get(r.Context())
	if !ok {
		var err error
		products, err = productRepo.GetAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not fetch products")
			return
		}
		listCache.Set(r.Context(), products)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toResponse(p)
	}
	_ = writeJSON(w, http.StatusOK, response)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Full replace of the product's name, price and quantity
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required")
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		ID:       id,
		Name:     req.Name,
		Price:    float64(req.Price),
		Quantity: int(req.Quantity),
	}
	updated, err := productRepo.Update(r.Context(), product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not update product")
		return
	}
	listCache.Invalidate(r.Context())

	_ = writeJSON(w, http.StatusOK, toResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} DeleteResult
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required")
		return
	}

	if err := productRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not delete product")
		return
	}
	listCache.Invalidate(r.Context())

	_ = writeJSON(w, http.StatusOK, DeleteResult{Message: "product deleted"})
}
