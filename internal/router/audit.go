package router

import (
	"bytes"
	"io"
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/provider"
	"github.com/uniquemj/ecommerce-api/internal/queue"

	"github.com/gin-gonic/gin"
)

const maxAuditBodyBytes = 8 << 10

// auditSkipPaths are write routes whose bodies carry credentials or raw
// webhook payloads and must never land in the audit trail.
var auditSkipPaths = map[string]struct{}{
	"/api/v1/auth/login":             {},
	"/api/v1/auth/register":          {},
	"/api/v1/auth/register/seller":   {},
	"/api/v1/webhook/stripe-webhook": {},
}

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyLogWriter) Write(b []byte) (int, error) {
	if w.body.Len() < maxAuditBodyBytes {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// AuditMiddleware records every write operation after the response is
// sent. Entries go through the task queue when it is enabled so the
// request path never waits on the database.
func AuditMiddleware(c *provider.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !isAuditedMethod(ctx.Request.Method) {
			ctx.Next()
			return
		}
		if _, skip := auditSkipPaths[ctx.Request.URL.Path]; skip {
			ctx.Next()
			return
		}

		requestBody := readRequestBody(ctx)
		writer := &bodyLogWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = writer

		ctx.Next()

		payload := queue.AuditLogWritePayload{
			RequestID:    getRequestID(ctx),
			ActorID:      actorID(ctx),
			ActorRole:    shared.GetUserRole(ctx),
			Method:       ctx.Request.Method,
			Path:         ctx.Request.URL.Path,
			StatusCode:   ctx.Writer.Status(),
			ClientIP:     ctx.ClientIP(),
			RequestBody:  truncateBody(requestBody),
			ResponseBody: truncateBody(writer.body.String()),
		}

		if c.QueueClient.Enabled() {
			if err := c.QueueClient.EnqueueAuditLogWrite(payload); err != nil {
				logger.Warnw("audit_enqueue_failed", "path", payload.Path, "error", err)
			}
			return
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
		go func() {
			if err := c.AuditService.Record(entry); err != nil {
				logger.Warnw("audit_write_failed", "path", entry.Path, "error", err)
			}
		}()
	}
}

func isAuditedMethod(method string) bool {
	switch method {
	case "POST", "PUT", "PATCH", "DELETE":
		return true
	default:
		return false
	}
}

func readRequestBody(c *gin.Context) string {
	if c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAuditBodyBytes+1))
	if err != nil {
		return ""
	}
	rest, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), bytes.NewReader(rest)))
	return string(body)
}

func truncateBody(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > maxAuditBodyBytes {
		return body[:maxAuditBodyBytes]
	}
	return body
}

func actorID(c *gin.Context) uint {
	value, exists := c.Get(shared.ContextUserID)
	if !exists {
		return 0
	}
	id, _ := value.(uint)
	return id
}
