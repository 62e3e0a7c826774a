package seller

import "github.com/uniquemj/ecommerce-api/internal/provider"

// Handler serves verified-seller routes.
type Handler struct {
	*provider.Container
}

// New creates the seller handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
