package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gudang-gateway/internal/domain"
)

// itemRecord is the wire shape of one stock item. Prices may arrive as a
// decimal string, so Harga is kept as json.Number.
type itemRecord struct {
	ID           int64       `json:"id,omitempty"`
	Nama         string      `json:"nama"`
	Harga        json.Number `json:"harga"`
	Stok         int         `json:"stok"`
	Kategori     int64       `json:"kategori,omitempty"`
	KategoriNama string      `json:"kategori_nama,omitempty"`
	Supplier     int64       `json:"supplier,omitempty"`
	Keterangan   string      `json:"keterangan,omitempty"`
	Gambar       string      `json:"gambar,omitempty"`
}

func (r itemRecord) toDomain() domain.StockItem {
	return domain.StockItem{
		ID:             r.ID,
		Name:           r.Nama,
		UnitPrice:      parsePrice(r.Harga),
		QuantityOnHand: r.Stok,
		CategoryID:     r.Kategori,
		CategoryName:   r.KategoriNama,
		SupplierID:     r.Supplier,
		Description:    r.Keterangan,
		ImageURL:       r.Gambar,
	}
}

func itemRecordFrom(item domain.StockItem) itemRecord {
	return itemRecord{
		Nama:       item.Name,
		Harga:      json.Number(strconv.FormatInt(item.UnitPrice, 10)),
		Stok:       item.QuantityOnHand,
		Kategori:   item.CategoryID,
		Supplier:   item.SupplierID,
		Keterangan: item.Description,
		Gambar:     item.ImageURL,
	}
}

// parsePrice truncates decimal price strings ("12000.00") to whole units.
func parsePrice(n json.Number) int64 {
	s := string(n)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// FetchStock returns the current stock snapshot. This is the Stock Snapshot
// Provider side of the cart engine's boundary.
func (c *Client) FetchStock(ctx context.Context) ([]domain.StockItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "barang/", nil)
	if err != nil {
		return nil, err
	}
	records, err := decodeList[itemRecord](raw)
	if err != nil {
		return nil, err
	}
	items := make([]domain.StockItem, 0, len(records))
	for _, r := range records {
		items = append(items, r.toDomain())
	}
	return items, nil
}

// CreateItem registers a new stock item upstream.
func (c *Client) CreateItem(ctx context.Context, item domain.StockItem) (domain.StockItem, error) {
	raw, err := c.do(ctx, http.MethodPost, "barang/", itemRecordFrom(item))
	if err != nil {
		return domain.StockItem{}, err
	}
	var rec itemRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.StockItem{}, err
	}
	return rec.toDomain(), nil
}

// UpdateItem replaces an existing stock item upstream.
func (c *Client) UpdateItem(ctx context.Context, id int64, item domain.StockItem) (domain.StockItem, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("barang/%d/", id), itemRecordFrom(item))
	if err != nil {
		return domain.StockItem{}, err
	}
	var rec itemRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.StockItem{}, err
	}
	return rec.toDomain(), nil
}

// DeleteItem removes a stock item upstream.
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("barang/%d/", id), nil)
	return err
}
