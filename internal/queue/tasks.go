package queue

import (
	"encoding/json"

	"github.com/uniquemj/ecommerce-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmationEmail mails the order summary after placement.
	TaskOrderConfirmationEmail = constants.TaskOrderConfirmationEmail
	// TaskAuditLogWrite persists one audit trail entry.
	TaskAuditLogWrite = constants.TaskAuditLogWrite
)

// OrderConfirmationEmailPayload identifies the order to mail about.
type OrderConfirmationEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// AuditLogWritePayload carries one audit entry off the request path.
type AuditLogWritePayload struct {
	RequestID    string `json:"request_id"`
	ActorID      uint   `json:"actor_id"`
	ActorRole    string `json:"actor_role"`
	Method       string `json:"method"`
	Path         string `json:"path"`
	StatusCode   int    `json:"status_code"`
	ClientIP     string `json:"client_ip"`
	RequestBody  string `json:"request_body"`
	ResponseBody string `json:"response_body"`
}

// NewOrderConfirmationEmailTask builds the confirmation email task.
func NewOrderConfirmationEmailTask(payload OrderConfirmationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmationEmail, body), nil
}

// NewAuditLogWriteTask builds the audit write task.
func NewAuditLogWriteTask(payload AuditLogWritePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAuditLogWrite, body), nil
}
