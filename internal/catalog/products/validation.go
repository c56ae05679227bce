package products

import (
	"strings"

	"github.com/vendio/vendio/internal/shared"
)

// validate applies null-only required semantics: an absent field fails,
// an explicit zero price does not.
func validate(req CreateProductRequest) error {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return shared.Validationf("the name field is required")
	}
	if req.Price == nil {
		return shared.Validationf("the price field is required")
	}
	if req.Description == nil || strings.TrimSpace(*req.Description) == "" {
		return shared.Validationf("the description field is required")
	}
	return nil
}
