package products

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, req ListProductsRequest) ([]Product, error) {
	return s.repo.List(ctx, req)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := validate(req); err != nil {
		return Product{}, err
	}

	product := Product{
		Name:        *req.Name,
		Price:       *req.Price,
		Description: *req.Description,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}
