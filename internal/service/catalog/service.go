package catalog

import (
	"context"
	"strings"

	"gudang-gateway/internal/domain"
)

type stockAPI interface {
	FetchStock(ctx context.Context) ([]domain.StockItem, error)
	CreateItem(ctx context.Context, item domain.StockItem) (domain.StockItem, error)
	UpdateItem(ctx context.Context, id int64, item domain.StockItem) (domain.StockItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

// Service exposes the product catalog screen: listing with name search plus
// item create/update/delete pass-through.
type Service struct {
	api stockAPI
}

func New(api stockAPI) *Service {
	return &Service{api: api}
}

// List returns the stock snapshot, optionally filtered by a case-insensitive
// name substring.
func (s *Service) List(ctx context.Context, search string) ([]domain.StockItem, error) {
	items, err := s.api.FetchStock(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return items, nil
	}
	filtered := make([]domain.StockItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), search) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *Service) Create(ctx context.Context, item domain.StockItem) (domain.StockItem, error) {
	if err := validate(item); err != nil {
		return domain.StockItem{}, err
	}
	return s.api.CreateItem(ctx, item)
}

func (s *Service) Update(ctx context.Context, id int64, item domain.StockItem) (domain.StockItem, error) {
	if err := validate(item); err != nil {
		return domain.StockItem{}, err
	}
	return s.api.UpdateItem(ctx, id, item)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteItem(ctx, id)
}

func validate(item domain.StockItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return &domain.Fault{Kind: domain.FaultValidation, Detail: "item name required"}
	}
	if item.UnitPrice < 0 {
		return &domain.Fault{Kind: domain.FaultValidation, Detail: "unit price must not be negative"}
	}
	if item.QuantityOnHand < 0 {
		return &domain.Fault{Kind: domain.FaultValidation, Detail: "stock must not be negative"}
	}
	return nil
}
