package models

// Product represents a product record in the catalog. The ID is
// assigned by the store on creation and never changes afterwards.
type Product struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}
