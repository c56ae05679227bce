package clients

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

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Client, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Client{}, shared.NotFoundf("no client found for id %d", id)
		}
		return Client{}, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CreateClientRequest) (Client, error) {
	if req.Name == nil || *req.Name == "" {
		return Client{}, shared.Validationf("the name field is required")
	}
	created, err := s.repo.Create(ctx, Client{Name: *req.Name, Email: req.Email})
	if err != nil {
		return Client{}, fmt.Errorf("create client: %w", err)
	}
	return created, nil
}
