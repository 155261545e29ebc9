package order

import "time"

type OrderDB struct {
	ID                string
	UserID            string
	Items             []byte
	ShippingAddress   []byte
	TotalAmount       string
	Status            string
	PaymentStatus     string
	CheckoutSessionID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderModifyDB struct {
	ID     *string
	Status *string
}

// itemJSON / addressJSON — формат колонок items и shipping_address (JSONB).
type itemJSON struct {
	ProductID string `json:"product_id,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Quantity  int32  `json:"quantity"`
	Price     string `json:"price"`
}

type addressJSON struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PhoneNumber string `json:"phone_number"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
}
