package order

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"storefront/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var itemsDB []itemJSON
	if err := json.Unmarshal(o.Items, &itemsDB); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}

	items := make([]entities.OrderItem, 0, len(itemsDB))
	for _, itemDB := range itemsDB {
		price, err := decimal.NewFromString(itemDB.Price)
		if err != nil {
			return nil, fmt.Errorf("parse item price %q: %w", itemDB.Price, err)
		}
		items = append(items, entities.OrderItem{
			ProductID: itemDB.ProductID,
			Name:      itemDB.Name,
			Image:     itemDB.Image,
			Quantity:  itemDB.Quantity,
			Price:     price,
		})
	}

	var addressDB addressJSON
	if err := json.Unmarshal(o.ShippingAddress, &addressDB); err != nil {
		return nil, fmt.Errorf("unmarshal shipping address: %w", err)
	}

	totalAmount, err := decimal.NewFromString(o.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("parse total amount %q: %w", o.TotalAmount, err)
	}

	var sessionID string
	if o.CheckoutSessionID != nil {
		sessionID = *o.CheckoutSessionID
	}

	return &entities.Order{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  items,
		ShippingAddress: entities.ShippingAddress{
			Street:      addressDB.Street,
			City:        addressDB.City,
			State:       addressDB.State,
			PhoneNumber: addressDB.PhoneNumber,
			PostalCode:  addressDB.PostalCode,
			Country:     addressDB.Country,
		},
		TotalAmount:       totalAmount,
		Status:            entities.OrderStatusType(o.Status),
		PaymentStatus:     entities.PaymentStatusType(o.PaymentStatus),
		CheckoutSessionID: sessionID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}, nil
}

func marshalItems(items []entities.OrderItem) ([]byte, error) {
	itemsDB := make([]itemJSON, 0, len(items))
	for _, item := range items {
		itemsDB = append(itemsDB, itemJSON{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
		})
	}
	return json.Marshal(itemsDB)
}

func marshalAddress(address entities.ShippingAddress) ([]byte, error) {
	return json.Marshal(addressJSON{
		Street:      address.Street,
		City:        address.City,
		State:       address.State,
		PhoneNumber: address.PhoneNumber,
		PostalCode:  address.PostalCode,
		Country:     address.Country,
	})
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	return orderDB
}
