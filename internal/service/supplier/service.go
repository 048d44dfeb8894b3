package supplier

import (
	"context"
	"strings"

	"gudang-gateway/internal/domain"
)

type supplierAPI interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	CreateSupplier(ctx context.Context, s domain.Supplier) (domain.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, s domain.Supplier) (domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
}

type Service struct {
	api supplierAPI
}

func New(api supplierAPI) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.api.ListSuppliers(ctx)
}

func (s *Service) Create(ctx context.Context, sup domain.Supplier) (domain.Supplier, error) {
	sup, err := normalize(sup)
	if err != nil {
		return domain.Supplier{}, err
	}
	return s.api.CreateSupplier(ctx, sup)
}

func (s *Service) Update(ctx context.Context, id int64, sup domain.Supplier) (domain.Supplier, error) {
	sup, err := normalize(sup)
	if err != nil {
		return domain.Supplier{}, err
	}
	return s.api.UpdateSupplier(ctx, id, sup)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteSupplier(ctx, id)
}

// normalize requires a company name and defaults blank contact fields to "-",
// matching the quick-add behavior of the original front end.
func normalize(sup domain.Supplier) (domain.Supplier, error) {
	sup.CompanyName = strings.TrimSpace(sup.CompanyName)
	if sup.CompanyName == "" {
		return domain.Supplier{}, &domain.Fault{Kind: domain.FaultValidation, Detail: "supplier company name required"}
	}
	if strings.TrimSpace(sup.Address) == "" {
		sup.Address = "-"
	}
	if strings.TrimSpace(sup.Phone) == "" {
		sup.Phone = "-"
	}
	return sup, nil
}
