package supplier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang-gateway/internal/domain"
)

type stubAPI struct {
	created domain.Supplier
}

func (s *stubAPI) ListSuppliers(_ context.Context) ([]domain.Supplier, error) { return nil, nil }

func (s *stubAPI) CreateSupplier(_ context.Context, sup domain.Supplier) (domain.Supplier, error) {
	s.created = sup
	return sup, nil
}

func (s *stubAPI) UpdateSupplier(_ context.Context, _ int64, sup domain.Supplier) (domain.Supplier, error) {
	return sup, nil
}

func (s *stubAPI) DeleteSupplier(_ context.Context, _ int64) error { return nil }

func TestCreateDefaultsContactFields(t *testing.T) {
	api := &stubAPI{}
	svc := New(api)

	_, err := svc.Create(context.Background(), domain.Supplier{CompanyName: " CV Sumber Makmur "})
	require.NoError(t, err)
	assert.Equal(t, "CV Sumber Makmur", api.created.CompanyName)
	assert.Equal(t, "-", api.created.Address)
	assert.Equal(t, "-", api.created.Phone)
}

func TestCreateRequiresCompanyName(t *testing.T) {
	svc := New(&stubAPI{})
	_, err := svc.Create(context.Background(), domain.Supplier{CompanyName: "   "})
	var fault *domain.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, domain.FaultValidation, fault.Kind)
}
