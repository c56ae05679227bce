package products

// CreateProductRequest carries the product creation payload. Required fields
// are pointers so an absent field is distinguishable from an explicit zero.
// Fields are declared in validation order; the first missing one wins.
type CreateProductRequest struct {
	Name        *string  `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Description *string  `json:"description" validate:"required"`
}

// CreatedProductResponse is the public subset returned after creation.
type CreatedProductResponse struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// ListProductsRequest filters the catalog listing.
type ListProductsRequest struct {
	IncludeDeleted bool
}
