package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"gudang-gateway/internal/domain"
)

type supplierRecord struct {
	ID             int64  `json:"id,omitempty"`
	NamaPerusahaan string `json:"nama_perusahaan"`
	Alamat         string `json:"alamat"`
	Telepon        string `json:"telepon"`
}

func (r supplierRecord) toDomain() domain.Supplier {
	return domain.Supplier{
		ID:          r.ID,
		CompanyName: r.NamaPerusahaan,
		Address:     r.Alamat,
		Phone:       r.Telepon,
	}
}

func supplierRecordFrom(s domain.Supplier) supplierRecord {
	return supplierRecord{
		NamaPerusahaan: s.CompanyName,
		Alamat:         s.Address,
		Telepon:        s.Phone,
	}
}

func (c *Client) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	raw, err := c.do(ctx, http.MethodGet, "supplier/", nil)
	if err != nil {
		return nil, err
	}
	records, err := decodeList[supplierRecord](raw)
	if err != nil {
		return nil, err
	}
	suppliers := make([]domain.Supplier, 0, len(records))
	for _, r := range records {
		suppliers = append(suppliers, r.toDomain())
	}
	return suppliers, nil
}

func (c *Client) CreateSupplier(ctx context.Context, s domain.Supplier) (domain.Supplier, error) {
	raw, err := c.do(ctx, http.MethodPost, "supplier/", supplierRecordFrom(s))
	if err != nil {
		return domain.Supplier{}, err
	}
	var rec supplierRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Supplier{}, err
	}
	return rec.toDomain(), nil
}

func (c *Client) UpdateSupplier(ctx context.Context, id int64, s domain.Supplier) (domain.Supplier, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("supplier/%d/", id), supplierRecordFrom(s))
	if err != nil {
		return domain.Supplier{}, err
	}
	var rec supplierRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Supplier{}, err
	}
	return rec.toDomain(), nil
}

func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("supplier/%d/", id), nil)
	return err
}
