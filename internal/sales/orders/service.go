package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendio/vendio/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, req ListSalesRequest) ([]SaleRow, error) {
	return s.repo.ListRows(ctx, req)
}

func (s *Service) Show(ctx context.Context, id int64) ([]SaleRow, error) {
	rows, err := s.repo.RowsBySale(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("show sale: %w", err)
	}
	if len(rows) == 0 {
		return nil, shared.NotFoundf("no sale found for id %d", id)
	}
	return rows, nil
}

// Create validates references, inserts the header and its line items in one
// transaction, and returns the stored sale as denormalized rows.
func (s *Service) Create(ctx context.Context, req CreateSaleRequest) ([]SaleRow, error) {
	lines := req.Lines()
	if len(lines) == 0 {
		return nil, shared.Validationf("the tb_product_id field is required")
	}

	ok, err := s.repo.ClientExists(ctx, *req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}
	if !ok {
		return nil, shared.Validationf("client (%d) does not exist", *req.ClientID)
	}

	// Fail fast on the first dangling product reference.
	for _, line := range lines {
		ok, err := s.repo.ProductExists(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("check product: %w", err)
		}
		if !ok {
			return nil, shared.Validationf("product (%d) does not exist", line.ProductID)
		}
	}

	var sale Sale
	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		sale, err = repo.InsertSale(ctx, *req.ClientID)
		if err != nil {
			return err
		}
		return repo.InsertLineItems(ctx, sale.ID, lines)
	})
	if err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	rows, err := s.repo.RowsBySale(ctx, sale.ID)
	if err != nil {
		return nil, fmt.Errorf("load created sale: %w", err)
	}
	return rows, nil
}

// Cancel soft-deletes the sale. Cancelling an already cancelled sale is an
// idempotent no-op.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	sale, err := s.repo.GetSale(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return shared.NotFoundf("cannot cancel, order (%d) does not exist", id)
		}
		return fmt.Errorf("get sale: %w", err)
	}
	if sale.DeletedAt != nil {
		return nil
	}
	if err := s.repo.SoftDeleteSale(ctx, id); err != nil {
		return fmt.Errorf("cancel sale: %w", err)
	}
	return nil
}
