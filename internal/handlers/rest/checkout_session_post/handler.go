package checkout_session_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
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
	var requestDTO dto.CheckoutSessionCreateRequest
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

	sessionID, err := h.service.CreateSession(r.Context(), auth.UserID(r.Context()), items, address)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidUserID),
			errors.Is(err, checkout.ErrEmptyItems),
			errors.Is(err, checkout.ErrInvalidItem):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, checkout.ErrGatewayUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CheckoutSessionCreateResponse{
		ID: sessionID,
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
