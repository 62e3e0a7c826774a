package service

import (
	"errors"
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/repository"
)

// DirectOrderNotifier sends the confirmation email inline when no queue is
// configured, the same degradation the audit middleware uses for its writes.
type DirectOrderNotifier struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	email  *EmailService
}

// NewDirectOrderNotifier creates the queueless notifier.
func NewDirectOrderNotifier(orders repository.OrderRepository, users repository.UserRepository, email *EmailService) *DirectOrderNotifier {
	return &DirectOrderNotifier{orders: orders, users: users, email: email}
}

var _ OrderNotifier = (*DirectOrderNotifier)(nil)

// NotifyOrderConfirmation sends off the goroutine; the order flow never
// waits on mail delivery.
func (n *DirectOrderNotifier) NotifyOrderConfirmation(orderID uint) {
	go func() {
		if err := n.send(orderID); err != nil {
			logger.Warnw("order_confirmation_send_failed", "order_id", orderID, "error", err)
		}
	}()
}

func (n *DirectOrderNotifier) send(orderID uint) error {
	order, err := n.orders.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return nil
	}
	customer, err := n.users.GetByID(order.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil || strings.TrimSpace(customer.Email) == "" {
		return nil
	}
	if err := n.email.SendOrderConfirmation(customer.Email, order); err != nil {
		if errors.Is(err, ErrEmailDisabled) || errors.Is(err, ErrEmailNotConfigured) {
			return nil
		}
		return err
	}
	return nil
}
