package checkout_success_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/pkg/middlewares/auth"
	"storefront/internal/service/checkout"
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
	var requestDTO dto.CheckoutSuccessRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.Reconcile(r.Context(), auth.UserID(r.Context()), requestDTO.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidUserID),
			errors.Is(err, checkout.ErrInvalidSessionID),
			errors.Is(err, checkout.ErrInvalidSession):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, checkout.ErrPaymentIncomplete):
			w.WriteHeader(http.StatusPaymentRequired)
		case errors.Is(err, checkout.ErrGatewayUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CheckoutSuccessResponse{
		Order:   toOrderDTO(*orderEntity),
		Success: true,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
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
