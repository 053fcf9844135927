package handlers

import "github.com/tarunbommali/ekart/internal/normalize"

// ProductRequest is the create/update payload. Price and Quantity
// tolerate quoted values: text goes through the same normalization the
// form applies, so "1,000" lands as 1000 and garbage lands as 0.
type ProductRequest struct {
	Name     string                  `json:"name"`
	Price    normalize.PriceField    `json:"price"`
	Quantity normalize.QuantityField `json:"quantity"`
}

type ProductResponse struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type DeleteResult struct {
	Message string `json:"message"`
}
