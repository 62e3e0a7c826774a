package public

import "github.com/uniquemj/ecommerce-api/internal/provider"

// Handler serves customer-facing and unauthenticated routes.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
