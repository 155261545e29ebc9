package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/service/order"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	orderEntity, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toOrderDTO(*orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity entities.Order) dto.Order {
	itemDTOs := make([]dto.OrderItem, len(orderEntity.Items))
	for i, item := range orderEntity.Items {
		itemDTOs[i] = dto.OrderItem{
			Name:     item.Name,
			Image:    item.Image,
			Quantity: item.Quantity,
			Price:    item.Price.InexactFloat64(),
		}
		if item.ProductID != "" {
			productID := item.ProductID
			itemDTOs[i].ProductID = &productID
		}
	}

	orderDTO := dto.Order{
		ID:            orderEntity.ID,
		UserID:        orderEntity.UserID,
		Items:         itemDTOs,
		TotalAmount:   orderEntity.TotalAmount.InexactFloat64(),
		Status:        orderEntity.Status.String(),
		PaymentStatus: orderEntity.PaymentStatus.String(),
		ShippingAddress: dto.ShippingAddress{
			Street:      orderEntity.ShippingAddress.Street,
			City:        orderEntity.ShippingAddress.City,
			State:       orderEntity.ShippingAddress.State,
			PhoneNumber: orderEntity.ShippingAddress.PhoneNumber,
			PostalCode:  orderEntity.ShippingAddress.PostalCode,
			Country:     orderEntity.ShippingAddress.Country,
		},
		CreatedAt: orderEntity.CreatedAt,
		UpdatedAt: orderEntity.UpdatedAt,
	}
	if orderEntity.CheckoutSessionID != "" {
		sessionID := orderEntity.CheckoutSessionID
		orderDTO.CheckoutSessionID = &sessionID
	}
	return orderDTO
}
