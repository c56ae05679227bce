package orders

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ShapeOptions parameterizes the public response shape. Currency replaces
// the implicit process-wide locale the presentation layer historically
// relied on.
type ShapeOptions struct {
	Currency language.Tag
}

// SaleView is the nested public shape of a sale.
type SaleView struct {
	Sale     SaleInfo      `json:"sale"`
	Client   ClientInfo    `json:"client"`
	Products []ProductLine `json:"products"`
}

type SaleInfo struct {
	ID           int64   `json:"id"`
	Status       string  `json:"status"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"total_display,omitempty"`
}

type ClientInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Shape folds denormalized join rows into nested sale views. Rows must be
// ordered by sale id; each sale's total is the sum over its line items of
// price times quantity. Pure transformation, no I/O.
func Shape(rows []SaleRow, opts ShapeOptions) []SaleView {
	var views []SaleView
	for _, row := range rows {
		line := ProductLine{
			Name:     row.ProductName,
			Price:    row.Price,
			Quantity: row.Quantity,
			Total:    row.Price * float64(row.Quantity),
		}

		if n := len(views); n > 0 && views[n-1].Sale.ID == row.SaleID {
			v := &views[n-1]
			v.Products = append(v.Products, line)
			v.Sale.Total += line.Total
			continue
		}

		views = append(views, SaleView{
			Sale: SaleInfo{
				ID:     row.SaleID,
				Status: row.Status(),
				Total:  line.Total,
			},
			Client:   ClientInfo{ID: row.ClientID, Name: row.ClientName},
			Products: []ProductLine{line},
		})
	}

	for i := range views {
		views[i].Sale.TotalDisplay = formatTotal(opts.Currency, views[i].Sale.Total)
	}
	return views
}

// ShapeOne shapes the rows of a single sale. The second return value is
// false when rows is empty.
func ShapeOne(rows []SaleRow, opts ShapeOptions) (SaleView, bool) {
	views := Shape(rows, opts)
	if len(views) == 0 {
		return SaleView{}, false
	}
	return views[0], true
}

func formatTotal(tag language.Tag, total float64) string {
	if tag == language.Und {
		return ""
	}
	p := message.NewPrinter(tag)
	if unit, conf := currency.FromTag(tag); conf != language.No {
		return p.Sprintf("%v", currency.Symbol(unit.Amount(total)))
	}
	return p.Sprintf("%.2f", total)
}
