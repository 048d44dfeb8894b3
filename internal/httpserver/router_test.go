package httpserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang-gateway/internal/domain"
	"gudang-gateway/internal/service/stats"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

type stubPinger struct{ err error }

func (p *stubPinger) Ping(_ context.Context) error { return p.err }

type stubAuthSvc struct {
	token    string
	loginErr error
	profile  domain.Profile
}

func (s *stubAuthSvc) Login(_ context.Context, _, _ string) (string, error) {
	return s.token, s.loginErr
}

func (s *stubAuthSvc) Profile(_ context.Context) (domain.Profile, error) {
	return s.profile, nil
}

type stubStatsSvc struct{ summary stats.Summary }

func (s *stubStatsSvc) Summarize(_ context.Context) (stats.Summary, error) {
	return s.summary, nil
}

type stubCatalogSvc struct {
	items []domain.StockItem
	err   error
}

func (s *stubCatalogSvc) List(_ context.Context, _ string) ([]domain.StockItem, error) {
	return s.items, s.err
}

func (s *stubCatalogSvc) Create(_ context.Context, item domain.StockItem) (domain.StockItem, error) {
	return item, s.err
}

func (s *stubCatalogSvc) Update(_ context.Context, _ int64, item domain.StockItem) (domain.StockItem, error) {
	return item, s.err
}

func (s *stubCatalogSvc) Delete(_ context.Context, _ int64) error { return s.err }

type stubCategorySvc struct{}

func (stubCategorySvc) List(_ context.Context) ([]domain.Category, error) { return nil, nil }

func (stubCategorySvc) Create(_ context.Context, name string) (domain.Category, error) {
	return domain.Category{ID: 1, Name: name}, nil
}

func (stubCategorySvc) Update(_ context.Context, id int64, name string) (domain.Category, error) {
	return domain.Category{ID: id, Name: name}, nil
}

func (stubCategorySvc) Delete(_ context.Context, _ int64) error { return nil }

type stubSupplierSvc struct{}

func (stubSupplierSvc) List(_ context.Context) ([]domain.Supplier, error) { return nil, nil }

func (stubSupplierSvc) Create(_ context.Context, s domain.Supplier) (domain.Supplier, error) {
	return s, nil
}

func (stubSupplierSvc) Update(_ context.Context, _ int64, s domain.Supplier) (domain.Supplier, error) {
	return s, nil
}

func (stubSupplierSvc) Delete(_ context.Context, _ int64) error { return nil }

func newTestRouter(t *testing.T, deps Deps) http.Handler {
	t.Helper()
	if deps.Pinger == nil {
		deps.Pinger = &stubPinger{}
	}
	if deps.Auth == nil {
		deps.Auth = &stubAuthSvc{token: "tok"}
	}
	if deps.Stats == nil {
		deps.Stats = &stubStatsSvc{}
	}
	if deps.Catalog == nil {
		deps.Catalog = &stubCatalogSvc{}
	}
	if deps.Category == nil {
		deps.Category = stubCategorySvc{}
	}
	if deps.Supplier == nil {
		deps.Supplier = stubSupplierSvc{}
	}
	if deps.POS == nil {
		deps.POS = newTestSessions()
	}
	return buildRouter(testLogger(), deps, nil)
}

func doRequest(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, Deps{})
	rec := doRequest(router, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzUnavailableWhenUpstreamDown(t *testing.T) {
	router := newTestRouter(t, Deps{Pinger: &stubPinger{err: context.DeadlineExceeded}})
	rec := doRequest(router, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, Deps{})
	for _, path := range []string{"/api/profile", "/api/dashboard", "/api/items", "/api/pos/cart"} {
		rec := doRequest(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	router := newTestRouter(t, Deps{Auth: &stubAuthSvc{token: "abc123"}})
	rec := doRequest(router, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"rahasia"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"abc123"`)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t, Deps{Auth: &stubAuthSvc{loginErr: domain.ErrInvalidCredentials}})
	rec := doRequest(router, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"salah"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRequiresBody(t *testing.T) {
	router := newTestRouter(t, Deps{})
	rec := doRequest(router, http.MethodPost, "/api/auth/login", `{"username":"admin"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListItemsAuthorized(t *testing.T) {
	router := newTestRouter(t, Deps{Catalog: &stubCatalogSvc{items: []domain.StockItem{
		{ID: 1, Name: "Kertas A4", UnitPrice: 45000, QuantityOnHand: 40},
	}}})
	rec := doRequest(router, http.MethodGet, "/api/items?search=kertas", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Kertas A4"`)
}

func TestUpstreamFaultMapsToBadGateway(t *testing.T) {
	router := newTestRouter(t, Deps{Catalog: &stubCatalogSvc{
		err: &domain.Fault{Kind: domain.FaultServer, Detail: "inventory API server error"},
	}})
	rec := doRequest(router, http.MethodGet, "/api/items", "", "tok")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCreateCategory(t *testing.T) {
	router := newTestRouter(t, Deps{})
	rec := doRequest(router, http.MethodPost, "/api/categories", `{"name":"ATK"}`, "tok")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ATK"`)
}

func TestRequestIDEchoed(t *testing.T) {
	router := newTestRouter(t, Deps{})
	rec := doRequest(router, http.MethodGet, "/healthz", "", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
