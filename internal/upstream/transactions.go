package upstream

import (
	"context"
	"net/http"

	"gudang-gateway/internal/domain"
)

// stockOutRecord is the transaction payload the recorder expects; one call
// durably decrements stock for one item.
type stockOutRecord struct {
	Barang      int64  `json:"barang"`
	Jumlah      int    `json:"jumlah"`
	NamaPembeli string `json:"nama_pembeli"`
}

// RecordOut records one outbound-stock transaction upstream. This is the
// Transaction Recorder side of the cart engine's boundary; failures come back
// classified by fault kind.
func (c *Client) RecordOut(ctx context.Context, out domain.StockOut) error {
	_, err := c.do(ctx, http.MethodPost, "transaksi/", stockOutRecord{
		Barang:      out.ItemID,
		Jumlah:      out.Quantity,
		NamaPembeli: out.Recipient,
	})
	return err
}
