package admin

import "github.com/uniquemj/ecommerce-api/internal/provider"

// Handler serves admin-only routes.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
