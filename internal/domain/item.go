package domain

// StockItem is one row of the warehouse stock snapshot as reported by the
// upstream inventory API. UnitPrice is in the smallest currency unit.
type StockItem struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	UnitPrice      int64  `json:"unitPrice"`
	QuantityOnHand int    `json:"quantityOnHand"`
	CategoryID     int64  `json:"categoryId,omitempty"`
	CategoryName   string `json:"categoryName,omitempty"`
	SupplierID     int64  `json:"supplierId,omitempty"`
	Description    string `json:"description,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// StockOut is a single outbound-stock event recorded upstream: a quantity of
// one item handed to a recipient.
type StockOut struct {
	ItemID    int64  `json:"itemId"`
	Quantity  int    `json:"quantity"`
	Recipient string `json:"recipient"`
}
