package orders

// CreateSaleRequest accepts both the flat single-product payload
// ({tb_client_id, tb_product_id, price, quantity}) and the line-item payload
// ({tb_client_id, items: [...]}). Required fields are pointers so an absent
// field is distinguishable from an explicit zero. Fields are declared in
// validation order; the first missing one wins.
type CreateSaleRequest struct {
	ClientID  *int64           `json:"tb_client_id" validate:"required"`
	ProductID *int64           `json:"tb_product_id" validate:"required_without=Items"`
	Price     *float64         `json:"price" validate:"required_without=Items"`
	Quantity  *int             `json:"quantity" validate:"required_without=Items"`
	Items     []CreateSaleItem `json:"items,omitempty" validate:"omitempty,dive"`
}

// CreateSaleItem is one line of the line-item payload shape.
type CreateSaleItem struct {
	ProductID *int64   `json:"tb_product_id" validate:"required"`
	Price     *float64 `json:"price" validate:"required"`
	Quantity  *int     `json:"quantity" validate:"required"`
}

// Lines normalizes either payload shape into line items. Callers must have
// validated the request first.
func (r CreateSaleRequest) Lines() []LineItem {
	if len(r.Items) > 0 {
		lines := make([]LineItem, 0, len(r.Items))
		for _, it := range r.Items {
			lines = append(lines, LineItem{ProductID: *it.ProductID, Price: *it.Price, Quantity: *it.Quantity})
		}
		return lines
	}
	if r.ProductID == nil || r.Price == nil || r.Quantity == nil {
		return nil
	}
	return []LineItem{{ProductID: *r.ProductID, Price: *r.Price, Quantity: *r.Quantity}}
}

// ListSalesRequest filters the sales listing.
type ListSalesRequest struct {
	ClientID         *int64
	IncludeCancelled bool
}
