package service

import (
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"gorm.io/gorm"
)

// OrderItemService drives the per-item status state machine.
type OrderItemService struct {
	items    repository.OrderItemRepository
	orders   repository.OrderRepository
	variants repository.ProductVariantRepository
}

// NewOrderItemService creates the order item service.
func NewOrderItemService(
	items repository.OrderItemRepository,
	orders repository.OrderRepository,
	variants repository.ProductVariantRepository,
) *OrderItemService {
	return &OrderItemService{items: items, orders: orders, variants: variants}
}

// ListForSeller returns a page of the seller's own order lines.
func (s *OrderItemService) ListForSeller(filter repository.OrderItemListFilter) ([]models.OrderItem, int64, error) {
	if filter.SellerID == 0 {
		return nil, 0, ErrOrderItemNotFound
	}
	return s.items.List(filter)
}

// SellerUpdateStatus advances an item one step along the fulfillment chain.
func (s *OrderItemService) SellerUpdateStatus(itemID, sellerID uint, next string) (*models.OrderItem, error) {
	next = strings.TrimSpace(next)
	item, err := s.items.GetByIDAndSeller(itemID, sellerID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrOrderItemNotFound
	}
	if !IsValidOrderItemStatus(next) {
		return nil, ErrInvalidStatus
	}
	if !CanSellerTransition(item.Status, next) {
		return nil, ErrInvalidTransition
	}
	if err := s.items.Updates(item.ID, map[string]interface{}{"status": next}); err != nil {
		return nil, err
	}
	logger.Infow("order_item_status_updated",
		"order_item_id", item.ID,
		"seller_id", sellerID,
		"from", item.Status,
		"to", next,
	)
	return s.items.GetByID(item.ID)
}

// InitReturn lets the owning customer open a return on a delivered item.
func (s *OrderItemService) InitReturn(itemID, customerID uint, reason string) (*models.OrderItem, error) {
	item, err := s.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrOrderItemNotFound
	}
	order, err := s.orders.GetByIDAndCustomer(item.OrderID, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderItemNotFound
	}
	if !CanInitReturn(item.Status) {
		return nil, ErrReturnNotAllowed
	}
	if err := s.items.Updates(item.ID, map[string]interface{}{
		"status":        constants.OrderItemStatusReturnInitialized,
		"return_reason": strings.TrimSpace(reason),
	}); err != nil {
		return nil, err
	}
	logger.Infow("order_item_return_initialized", "order_item_id", item.ID, "customer_id", customerID)
	return s.items.GetByID(item.ID)
}

// ResolveReturn lets the seller accept or reject an initialized return.
// An accepted return puts the quantity back into stock.
func (s *OrderItemService) ResolveReturn(itemID, sellerID uint, decision string) (*models.OrderItem, error) {
	decision = strings.TrimSpace(decision)
	item, err := s.items.GetByIDAndSeller(itemID, sellerID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrOrderItemNotFound
	}
	if !CanResolveReturn(item.Status, decision) {
		return nil, ErrInvalidTransition
	}

	if decision == constants.OrderItemStatusReturnAccepted {
		err = models.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.items.WithTx(tx).Updates(item.ID, map[string]interface{}{"status": decision}); err != nil {
				return err
			}
			return s.variants.WithTx(tx).IncrementStock(item.VariantID, item.Quantity)
		})
	} else {
		err = s.items.Updates(item.ID, map[string]interface{}{"status": decision})
	}
	if err != nil {
		return nil, err
	}
	logger.Infow("order_item_return_resolved", "order_item_id", item.ID, "seller_id", sellerID, "decision", decision)
	return s.items.GetByID(item.ID)
}

// AdminSetStatus overrides an item's status directly, bypassing the
// fulfillment chain. faildelivery is only reachable this way.
func (s *OrderItemService) AdminSetStatus(itemID uint, status string) (*models.OrderItem, error) {
	status = strings.TrimSpace(status)
	if !IsValidOrderItemStatus(status) {
		return nil, ErrInvalidStatus
	}
	item, err := s.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrOrderItemNotFound
	}
	if err := s.items.Updates(item.ID, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	logger.Infow("order_item_status_overridden",
		"order_item_id", item.ID,
		"from", item.Status,
		"to", status,
	)
	return s.items.GetByID(item.ID)
}
