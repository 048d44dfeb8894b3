// Package seed pushes a small demo dataset through the inventory API for
// manual testing of the gateway. It is idempotent: existing records are
// matched by name and left alone.
package seed

import (
	"context"

	"github.com/cockroachdb/errors"

	"gudang-gateway/internal/domain"
)

type inventoryAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (domain.Category, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	CreateSupplier(ctx context.Context, s domain.Supplier) (domain.Supplier, error)
	FetchStock(ctx context.Context) ([]domain.StockItem, error)
	CreateItem(ctx context.Context, item domain.StockItem) (domain.StockItem, error)
}

type itemSeed struct {
	Name      string
	UnitPrice int64
	Stock     int
	Category  string
}

var categories = []string{"ATK", "Elektronik", "Bahan Baku"}

var suppliers = []domain.Supplier{
	{CompanyName: "CV Sumber Makmur", Address: "Jl. Industri 12", Phone: "0812-0000-0001"},
	{CompanyName: "PT Maju Jaya", Address: "-", Phone: "-"},
}

var items = []itemSeed{
	{Name: "Kertas A4 80gsm", UnitPrice: 45000, Stock: 40, Category: "ATK"},
	{Name: "Tinta Printer Hitam", UnitPrice: 95000, Stock: 12, Category: "ATK"},
	{Name: "Kabel LAN 5m", UnitPrice: 35000, Stock: 3, Category: "Elektronik"},
	{Name: "Lem Kayu 1kg", UnitPrice: 28000, Stock: 25, Category: "Bahan Baku"},
}

// Apply inserts the demo dataset through the API with the token carried in
// ctx.
func Apply(ctx context.Context, api inventoryAPI) error {
	categoryIDs, err := ensureCategories(ctx, api)
	if err != nil {
		return err
	}
	if err := ensureSuppliers(ctx, api); err != nil {
		return err
	}
	return ensureItems(ctx, api, categoryIDs)
}

func ensureCategories(ctx context.Context, api inventoryAPI) (map[string]int64, error) {
	existing, err := api.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	ids := make(map[string]int64, len(existing))
	for _, c := range existing {
		ids[c.Name] = c.ID
	}
	for _, name := range categories {
		if _, ok := ids[name]; ok {
			continue
		}
		created, err := api.CreateCategory(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "create category %q", name)
		}
		ids[created.Name] = created.ID
	}
	return ids, nil
}

func ensureSuppliers(ctx context.Context, api inventoryAPI) error {
	existing, err := api.ListSuppliers(ctx)
	if err != nil {
		return errors.Wrap(err, "list suppliers")
	}
	known := make(map[string]bool, len(existing))
	for _, s := range existing {
		known[s.CompanyName] = true
	}
	for _, s := range suppliers {
		if known[s.CompanyName] {
			continue
		}
		if _, err := api.CreateSupplier(ctx, s); err != nil {
			return errors.Wrapf(err, "create supplier %q", s.CompanyName)
		}
	}
	return nil
}

func ensureItems(ctx context.Context, api inventoryAPI, categoryIDs map[string]int64) error {
	existing, err := api.FetchStock(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch stock")
	}
	known := make(map[string]bool, len(existing))
	for _, item := range existing {
		known[item.Name] = true
	}
	for _, seed := range items {
		if known[seed.Name] {
			continue
		}
		_, err := api.CreateItem(ctx, domain.StockItem{
			Name:           seed.Name,
			UnitPrice:      seed.UnitPrice,
			QuantityOnHand: seed.Stock,
			CategoryID:     categoryIDs[seed.Category],
		})
		if err != nil {
			return errors.Wrapf(err, "create item %q", seed.Name)
		}
	}
	return nil
}
