package entities

// CheckoutSession — снапшот hosted-checkout сессии со стороны платежного шлюза.
// AmountTotal хранится в минорных единицах валюты (копейки/центы), как отдает шлюз.
type CheckoutSession struct {
	ID              string
	PaymentStatus   SessionPaymentStatus
	AmountTotal     int64
	Currency        string
	Items           []OrderItem
	ShippingAddress ShippingAddress
}

type SessionPaymentStatus string

const (
	SessionPaid              SessionPaymentStatus = "paid"
	SessionUnpaid            SessionPaymentStatus = "unpaid"
	SessionNoPaymentRequired SessionPaymentStatus = "no_payment_required"
)

func (s SessionPaymentStatus) String() string {
	return string(s)
}

// IsPaid сообщает, завершена ли оплата по сессии.
func (s *CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == SessionPaid
}
