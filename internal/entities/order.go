package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                string
	UserID            string
	Items             []OrderItem
	ShippingAddress   ShippingAddress
	TotalAmount       decimal.Decimal
	Status            OrderStatusType
	PaymentStatus     PaymentStatusType
	CheckoutSessionID string // пустая строка для заказов без оплаты через hosted checkout
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderItem struct {
	ProductID string // может быть пустым, если товар удален из каталога
	Name      string
	Image     string
	Quantity  int32
	Price     decimal.Decimal
}

type ShippingAddress struct {
	Street      string
	City        string
	State       string
	PhoneNumber string
	PostalCode  string
	Country     string
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type PaymentStatusType string

const (
	PaymentPending   PaymentStatusType = "pending"
	PaymentCompleted PaymentStatusType = "completed"
	PaymentFailed    PaymentStatusType = "failed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// NewOrder описывает заказ до вставки в хранилище: id и таймстемпы назначаются при создании.
type NewOrder struct {
	UserID            string
	Items             []OrderItem
	ShippingAddress   ShippingAddress
	TotalAmount       decimal.Decimal
	Status            OrderStatusType
	PaymentStatus     PaymentStatusType
	CheckoutSessionID *string
}

type OrderModify struct {
	ID     *string
	Status *OrderStatusType
}
