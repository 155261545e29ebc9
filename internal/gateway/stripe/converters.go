package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	stripesdk "github.com/stripe/stripe-go/v76"
	"storefront/internal/entities"
	"storefront/internal/service/checkout"
)

// Канонический формат metadata сессии: плоский список позиций и адрес доставки.
// Вложенный product-lookup вариант не поддерживается.
const (
	metadataItemsKey   = "items"
	metadataAddressKey = "shipping_address"
)

type metadataItem struct {
	ProductID string `json:"product_id,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Quantity  int32  `json:"quantity"`
	Price     string `json:"price"`
}

type metadataAddress struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PhoneNumber string `json:"phone_number"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
}

func marshalItemsMetadata(items []entities.OrderItem) ([]byte, error) {
	metaItems := make([]metadataItem, 0, len(items))
	for _, item := range items {
		metaItems = append(metaItems, metadataItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
		})
	}
	return json.Marshal(metaItems)
}

func marshalAddressMetadata(address entities.ShippingAddress) ([]byte, error) {
	return json.Marshal(metadataAddress{
		Street:      address.Street,
		City:        address.City,
		State:       address.State,
		PhoneNumber: address.PhoneNumber,
		PostalCode:  address.PostalCode,
		Country:     address.Country,
	})
}

func toDomain(session *stripesdk.CheckoutSession) (*entities.CheckoutSession, error) {
	if session == nil {
		return nil, fmt.Errorf("%w: empty session response", checkout.ErrGatewayUnavailable)
	}

	items, err := parseItemsMetadata(session.Metadata[metadataItemsKey])
	if err != nil {
		return nil, err
	}

	address, err := parseAddressMetadata(session.Metadata[metadataAddressKey])
	if err != nil {
		return nil, err
	}

	return &entities.CheckoutSession{
		ID:              session.ID,
		PaymentStatus:   entities.SessionPaymentStatus(session.PaymentStatus),
		AmountTotal:     session.AmountTotal,
		Currency:        string(session.Currency),
		Items:           items,
		ShippingAddress: address,
	}, nil
}

func parseItemsMetadata(raw string) ([]entities.OrderItem, error) {
	if raw == "" {
		return []entities.OrderItem{}, nil
	}

	var metaItems []metadataItem
	if err := json.Unmarshal([]byte(raw), &metaItems); err != nil {
		return nil, fmt.Errorf("unmarshal items metadata: %w", err)
	}

	items := make([]entities.OrderItem, 0, len(metaItems))
	for _, metaItem := range metaItems {
		price, err := decimal.NewFromString(metaItem.Price)
		if err != nil {
			return nil, fmt.Errorf("parse item price %q: %w", metaItem.Price, err)
		}
		items = append(items, entities.OrderItem{
			ProductID: metaItem.ProductID,
			Name:      metaItem.Name,
			Image:     metaItem.Image,
			Quantity:  metaItem.Quantity,
			Price:     price,
		})
	}
	return items, nil
}

func parseAddressMetadata(raw string) (entities.ShippingAddress, error) {
	if raw == "" {
		return entities.ShippingAddress{}, nil
	}

	var metaAddress metadataAddress
	if err := json.Unmarshal([]byte(raw), &metaAddress); err != nil {
		return entities.ShippingAddress{}, fmt.Errorf("unmarshal shipping address metadata: %w", err)
	}

	return entities.ShippingAddress{
		Street:      metaAddress.Street,
		City:        metaAddress.City,
		State:       metaAddress.State,
		PhoneNumber: metaAddress.PhoneNumber,
		PostalCode:  metaAddress.PostalCode,
		Country:     metaAddress.Country,
	}, nil
}

// toMinorUnits переводит цену в минорные единицы валюты (2500.00 -> 250000).
func toMinorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}
