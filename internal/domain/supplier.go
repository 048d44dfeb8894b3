package domain

type Supplier struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
}
