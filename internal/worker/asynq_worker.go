package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/provider"
	"github.com/uniquemj/ecommerce-api/internal/queue"
	"github.com/uniquemj/ecommerce-api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer processes async tasks against the shared container.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register attaches the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
	mux.HandleFunc(queue.TaskAuditLogWrite, c.handleAuditLogWrite)
}

func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	customer, err := c.UserRepo.GetByID(order.CustomerID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_user_failed", "order_id", order.ID, "customer_id", order.CustomerID, "error", err)
		return err
	}
	if customer == nil || strings.TrimSpace(customer.Email) == "" {
		logger.Debugw("worker_order_confirmation_skip_empty_receiver", "order_id", order.ID)
		return nil
	}
	if err := c.EmailService.SendOrderConfirmation(customer.Email, order); err != nil {
		if errors.Is(err, service.ErrEmailDisabled) || errors.Is(err, service.ErrEmailNotConfigured) {
			logger.Debugw("worker_order_confirmation_skip_email_disabled", "order_id", order.ID)
			return nil
		}
		logger.Warnw("worker_order_confirmation_send_failed",
			"order_id", order.ID,
			"order_number", order.OrderNumber,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleAuditLogWrite(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.AuditLogWritePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_audit_write_unmarshal_failed", "error", err)
		return err
	}
	entry := &models.AuditLog{
		RequestID:    payload.RequestID,
		ActorID:      payload.ActorID,
		ActorRole:    payload.ActorRole,
		Method:       payload.Method,
		Path:         payload.Path,
		StatusCode:   payload.StatusCode,
		ClientIP:     payload.ClientIP,
		RequestBody:  payload.RequestBody,
		ResponseBody: payload.ResponseBody,
	}
	if err := c.AuditService.Record(entry); err != nil {
		logger.Warnw("worker_audit_write_failed", "request_id", payload.RequestID, "error", err)
		return err
	}
	return nil
}
