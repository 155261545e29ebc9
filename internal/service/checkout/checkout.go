package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"storefront/internal/entities"
	"storefront/pkg/logger"
)

// minorUnitExponent — шлюз отдает суммы в минорных единицах валюты (250000 -> 2500.00).
const minorUnitExponent = 2

type Checkout struct {
	repository  Repository
	gateway     Gateway
	cartService CartService
	log         serviceLogger
}

func New(log serviceLogger, repository Repository, gateway Gateway, cartService CartService) *Checkout {
	return &Checkout{
		repository:  repository,
		gateway:     gateway,
		cartService: cartService,
		log:         log,
	}
}

// CreateSession создает hosted-checkout сессию у платежного шлюза и возвращает ее идентификатор.
func (s *Checkout) CreateSession(ctx context.Context, userID string, items []entities.OrderItem, address entities.ShippingAddress) (string, error) {
	if !isValidUserID(userID) {
		return "", ErrInvalidUserID
	}
	if len(items) == 0 {
		return "", ErrEmptyItems
	}
	for _, item := range items {
		if !isValidItem(item) {
			return "", fmt.Errorf("%w: %q", ErrInvalidItem, item.Name)
		}
	}

	sessionID, err := s.gateway.CreateSession(ctx, userID, items, address)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sessionID, nil
}

// Reconcile превращает подтвержденную платежную сессию ровно в один заказ.
// Операция идемпотентна: повторные вызовы с той же парой (userID, sessionID)
// возвращают уже созданный заказ и не создают новый.
func (s *Checkout) Reconcile(ctx context.Context, userID, sessionID string) (*entities.Order, error) {
	if !isValidUserID(userID) {
		return nil, ErrInvalidUserID
	}
	if !isValidSessionID(sessionID) {
		return nil, ErrInvalidSessionID
	}

	existing, err := s.repository.GetBySession(ctx, userID, sessionID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrOrderNotFound) {
		return nil, fmt.Errorf("lookup order by session: %w", err)
	}

	session, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get checkout session %s: %w", sessionID, err)
	}

	if !session.IsPaid() {
		return nil, ErrPaymentIncomplete
	}

	newOrder := entities.NewOrder{
		UserID:            userID,
		Items:             session.Items,
		ShippingAddress:   session.ShippingAddress,
		TotalAmount:       decimal.New(session.AmountTotal, -minorUnitExponent),
		Status:            entities.OrderProcessing,
		PaymentStatus:     entities.PaymentCompleted,
		CheckoutSessionID: &sessionID,
	}

	order, err := s.repository.Create(ctx, newOrder)
	if err != nil {
		// Гонка двух одинаковых запросов: уникальный индекс (user_id, checkout_session_id)
		// пропустил ровно одну вставку, проигравший перечитывает заказ победителя.
		if errors.Is(err, ErrSessionAlreadyProcessed) {
			winner, readErr := s.repository.GetBySession(ctx, userID, sessionID)
			if readErr != nil {
				return nil, fmt.Errorf("read back reconciled order: %w", readErr)
			}
			return winner, nil
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Заказ уже закоммичен, очистка корзины best-effort.
	if err := s.cartService.Clear(ctx, userID); err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("user", userID),
		).Warn("clear cart after checkout")
	}

	return order, nil
}
