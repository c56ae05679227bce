package orders

import "time"

// Sale status values derived from the deletion timestamp.
const (
	StatusInProgress = "in progress"
	StatusCancelled  = "cancelled"
)

// Sale is an order header. Product lines live in tb_sale_items, so both
// historical payload shapes (single product and product list) collapse into
// one model. A non-nil DeletedAt marks a cancelled sale; the row is kept.
type Sale struct {
	ID        int64      `json:"id"`
	ClientID  int64      `json:"tb_client_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Status reports the caller-facing lifecycle state.
func (s Sale) Status() string {
	if s.DeletedAt == nil {
		return StatusInProgress
	}
	return StatusCancelled
}

// LineItem is one product-and-quantity entry within a sale.
type LineItem struct {
	ID        int64   `json:"id"`
	SaleID    int64   `json:"sale_id"`
	ProductID int64   `json:"tb_product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// SaleRow is one denormalized row from the sales/clients/items/products
// join, ordered by sale id then item id.
type SaleRow struct {
	SaleID      int64
	ClientID    int64
	ClientName  string
	ProductName string
	Price       float64
	Quantity    int
	DeletedAt   *time.Time
}

// Status derives the lifecycle state of the row's sale.
func (r SaleRow) Status() string {
	if r.DeletedAt == nil {
		return StatusInProgress
	}
	return StatusCancelled
}
