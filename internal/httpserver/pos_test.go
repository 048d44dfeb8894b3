package httpserver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang-gateway/internal/domain"
	"gudang-gateway/internal/pos"
)

type stubStock struct{ items []domain.StockItem }

func (s *stubStock) FetchStock(_ context.Context) ([]domain.StockItem, error) {
	return s.items, nil
}

type stubRecorder struct {
	recorded []domain.StockOut
	failWith error
}

func (r *stubRecorder) RecordOut(_ context.Context, out domain.StockOut) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.recorded = append(r.recorded, out)
	return nil
}

var posItems = []domain.StockItem{
	{ID: 1, Name: "Kertas A4", UnitPrice: 1000, QuantityOnHand: 3},
	{ID: 2, Name: "Tinta Printer", UnitPrice: 5000, QuantityOnHand: 10},
}

func newTestSessions() *pos.Sessions {
	return pos.NewSessions(&stubStock{items: posItems}, &stubRecorder{}, testLogger(), time.Hour)
}

func newPOSRouter(t *testing.T, recorder *stubRecorder) http.Handler {
	t.Helper()
	sessions := pos.NewSessions(&stubStock{items: posItems}, recorder, testLogger(), time.Hour)
	return newTestRouter(t, Deps{POS: sessions})
}

func TestPOSCartFlow(t *testing.T) {
	recorder := &stubRecorder{}
	router := newPOSRouter(t, recorder)

	rec := doRequest(router, http.MethodGet, "/api/pos/cart", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
	assert.Contains(t, rec.Body.String(), `"total":0`)

	rec = doRequest(router, http.MethodPost, "/api/pos/cart/items", `{"itemId":1}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `Kertas A4 added to cart`)

	rec = doRequest(router, http.MethodPost, "/api/pos/cart/items", `{"itemId":2}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":6000`)

	rec = doRequest(router, http.MethodPatch, "/api/pos/cart/items/1", `{"delta":1}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":7000`)

	rec = doRequest(router, http.MethodPost, "/api/pos/checkout", `{"recipient":"Produksi"}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"pending_confirmation"`)

	rec = doRequest(router, http.MethodPost, "/api/pos/checkout/confirm", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
	assert.Contains(t, rec.Body.String(), `"total":0`)

	require.Len(t, recorder.recorded, 2)
	assert.Equal(t, domain.StockOut{ItemID: 1, Quantity: 2, Recipient: "Produksi"}, recorder.recorded[0])
	assert.Equal(t, domain.StockOut{ItemID: 2, Quantity: 1, Recipient: "Produksi"}, recorder.recorded[1])
}

func TestPOSAddBeyondStockConflicts(t *testing.T) {
	router := newPOSRouter(t, &stubRecorder{})

	for i := 0; i < 3; i++ {
		rec := doRequest(router, http.MethodPost, "/api/pos/cart/items", `{"itemId":1}`, "tok")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doRequest(router, http.MethodPost, "/api/pos/cart/items", `{"itemId":1}`, "tok")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPOSBeginCheckoutValidation(t *testing.T) {
	router := newPOSRouter(t, &stubRecorder{})

	rec := doRequest(router, http.MethodPost, "/api/pos/checkout", `{"recipient":"Produksi"}`, "tok")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty cart")

	rec = doRequest(router, http.MethodPost, "/api/pos/cart/items", `{"itemId":1}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/pos/checkout", `{"recipient":"   "}`, "tok")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing recipient")
}

func TestPOSConfirmFailureSurfacesFaultAndKeepsCart(t *testing.T) {
	recorder := &stubRecorder{failWith: &domain.Fault{Kind: domain.FaultServer, Detail: "inventory API server error"}}
	router := newPOSRouter(t, recorder)

	rec := doRequest(router, http.MethodPost, "/api/pos/cart/items", `{"itemId":1}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(router, http.MethodPost, "/api/pos/checkout", `{"recipient":"Produksi"}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/pos/checkout/confirm", "", "tok")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fault":"server"`)

	rec = doRequest(router, http.MethodGet, "/api/pos/cart", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"failed"`)
	assert.Contains(t, rec.Body.String(), `"quantity":1`)

	// Retry succeeds once the upstream recovers.
	recorder.failWith = nil
	rec = doRequest(router, http.MethodPost, "/api/pos/checkout/confirm", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
}

func TestPOSCancelPreservesCart(t *testing.T) {
	router := newPOSRouter(t, &stubRecorder{})

	rec := doRequest(router, http.MethodPost, "/api/pos/cart/items", `{"itemId":1}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(router, http.MethodPost, "/api/pos/checkout", `{"recipient":"Produksi"}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/pos/checkout/cancel", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
	assert.Contains(t, rec.Body.String(), `"Kertas A4"`)
}

func TestPOSSessionReleaseResetsCart(t *testing.T) {
	router := newPOSRouter(t, &stubRecorder{})

	rec := doRequest(router, http.MethodPost, "/api/pos/cart/items", `{"itemId":1}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/pos/session", "", "tok")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/pos/cart", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":0`)
}

func TestPOSSessionsIsolatedPerToken(t *testing.T) {
	router := newPOSRouter(t, &stubRecorder{})

	rec := doRequest(router, http.MethodPost, "/api/pos/cart/items", `{"itemId":1}`, "tok-a")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/pos/cart", "", "tok-b")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":0`)
}
