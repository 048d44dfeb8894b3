package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"gudang-gateway/internal/domain"
)

type categoryRecord struct {
	ID   int64  `json:"id,omitempty"`
	Nama string `json:"nama"`
}

func (r categoryRecord) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Name: r.Nama}
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	raw, err := c.do(ctx, http.MethodGet, "kategori/", nil)
	if err != nil {
		return nil, err
	}
	records, err := decodeList[categoryRecord](raw)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, r.toDomain())
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	raw, err := c.do(ctx, http.MethodPost, "kategori/", categoryRecord{Nama: name})
	if err != nil {
		return domain.Category{}, err
	}
	var rec categoryRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Category{}, err
	}
	return rec.toDomain(), nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, name string) (domain.Category, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("kategori/%d/", id), categoryRecord{Nama: name})
	if err != nil {
		return domain.Category{}, err
	}
	var rec categoryRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Category{}, err
	}
	return rec.toDomain(), nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("kategori/%d/", id), nil)
	return err
}
