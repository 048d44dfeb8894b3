package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang-gateway/internal/domain"
)

type stubAPI struct {
	items   []domain.StockItem
	created domain.StockItem
}

func (s *stubAPI) FetchStock(_ context.Context) ([]domain.StockItem, error) {
	return s.items, nil
}

func (s *stubAPI) CreateItem(_ context.Context, item domain.StockItem) (domain.StockItem, error) {
	s.created = item
	item.ID = 99
	return item, nil
}

func (s *stubAPI) UpdateItem(_ context.Context, _ int64, item domain.StockItem) (domain.StockItem, error) {
	return item, nil
}

func (s *stubAPI) DeleteItem(_ context.Context, _ int64) error { return nil }

func TestListFiltersByName(t *testing.T) {
	svc := New(&stubAPI{items: []domain.StockItem{
		{ID: 1, Name: "Kertas A4"},
		{ID: 2, Name: "Tinta Printer"},
		{ID: 3, Name: "kertas F4"},
	}})

	items, err := svc.List(context.Background(), "  KERTAS ")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubAPI{})

	_, err := svc.Create(context.Background(), domain.StockItem{Name: "  "})
	var fault *domain.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, domain.FaultValidation, fault.Kind)

	_, err = svc.Create(context.Background(), domain.StockItem{Name: "Kertas", UnitPrice: -1})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), domain.StockItem{Name: "Kertas", QuantityOnHand: -1})
	require.Error(t, err)

	created, err := svc.Create(context.Background(), domain.StockItem{Name: "Kertas", UnitPrice: 1000, QuantityOnHand: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(99), created.ID)
}
