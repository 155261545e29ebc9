package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/pkg/middlewares/auth"
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
	var requestDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.OrderItem, len(requestDTO.Items))
	for i, item := range requestDTO.Items {
		items[i] = entities.OrderItem{
			Name:     item.Name,
			Image:    item.Image,
			Quantity: item.Quantity,
			Price:    decimal.NewFromFloat(item.Price),
		}
		if item.ProductID != nil {
			items[i].ProductID = *item.ProductID
		}
	}
	address := entities.ShippingAddress{
		Street:      requestDTO.ShippingAddress.Street,
		City:        requestDTO.ShippingAddress.City,
		State:       requestDTO.ShippingAddress.State,
		PhoneNumber: requestDTO.ShippingAddress.PhoneNumber,
		PostalCode:  requestDTO.ShippingAddress.PostalCode,
		Country:     requestDTO.ShippingAddress.Country,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), auth.UserID(r.Context()), items, address, decimal.NewFromFloat(requestDTO.TotalAmount))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidUserID),
			errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderCreateResponse{
		Order:   toOrderDTO(*orderEntity),
		Success: true,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
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
