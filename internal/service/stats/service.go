package stats

import (
	"context"

	"gudang-gateway/internal/domain"
)

type stockAPI interface {
	FetchStock(ctx context.Context) ([]domain.StockItem, error)
}

// Summary aggregates the dashboard widgets over one stock snapshot.
type Summary struct {
	TotalItems int                `json:"totalItems"`
	TotalStock int                `json:"totalStock"`
	AssetValue int64              `json:"assetValue"`
	LowStock   []domain.StockItem `json:"lowStock"`
}

type Service struct {
	api       stockAPI
	threshold int
}

// New builds the dashboard service. threshold marks items as low stock when
// their quantity on hand falls below it.
func New(api stockAPI, threshold int) *Service {
	return &Service{api: api, threshold: threshold}
}

// Summarize computes distinct item count, total stock units, asset value
// (unit price times quantity summed) and the low-stock list.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	items, err := s.api.FetchStock(ctx)
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{
		TotalItems: len(items),
		LowStock:   []domain.StockItem{},
	}
	for _, item := range items {
		summary.TotalStock += item.QuantityOnHand
		summary.AssetValue += item.UnitPrice * int64(item.QuantityOnHand)
		if item.QuantityOnHand < s.threshold {
			summary.LowStock = append(summary.LowStock, item)
		}
	}
	return summary, nil
}
