package category

import (
	"context"
	"strings"

	"gudang-gateway/internal/domain"
)

type categoryAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type Service struct {
	api categoryAPI
}

func New(api categoryAPI) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.api.ListCategories(ctx)
}

func (s *Service) Create(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, &domain.Fault{Kind: domain.FaultValidation, Detail: "category name required"}
	}
	return s.api.CreateCategory(ctx, name)
}

func (s *Service) Update(ctx context.Context, id int64, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, &domain.Fault{Kind: domain.FaultValidation, Detail: "category name required"}
	}
	return s.api.UpdateCategory(ctx, id, name)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteCategory(ctx, id)
}
