package repository

import (
	"errors"

	"github.com/uniquemj/ecommerce-api/internal/models"

	"gorm.io/gorm"
)

// ShipmentAddressRepository is the shipment address data access interface.
type ShipmentAddressRepository interface {
	GetByIDAndCustomer(id, customerID uint) (*models.ShipmentAddress, error)
	GetActive(customerID uint) (*models.ShipmentAddress, error)
	Create(address *models.ShipmentAddress) error
	Updates(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	ListByCustomer(customerID uint) ([]models.ShipmentAddress, error)
	ClearDefault(customerID uint) error
	ClearActive(customerID uint) error
	WithTx(tx *gorm.DB) *GormShipmentAddressRepository
}

// GormShipmentAddressRepository is the GORM implementation.
type GormShipmentAddressRepository struct {
	db *gorm.DB
}

// NewShipmentAddressRepository creates a shipment address repository.
func NewShipmentAddressRepository(db *gorm.DB) *GormShipmentAddressRepository {
	return &GormShipmentAddressRepository{db: db}
}

// WithTx rebinds the repository to a transaction.
func (r *GormShipmentAddressRepository) WithTx(tx *gorm.DB) *GormShipmentAddressRepository {
	if tx == nil {
		return r
	}
	return &GormShipmentAddressRepository{db: tx}
}

// GetByIDAndCustomer fetches an address scoped to its owner, nil when missing.
func (r *GormShipmentAddressRepository) GetByIDAndCustomer(id, customerID uint) (*models.ShipmentAddress, error) {
	var address models.ShipmentAddress
	err := r.db.Where("id = ? AND customer_id = ?", id, customerID).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// GetActive fetches the customer's currently active address, nil when none.
func (r *GormShipmentAddressRepository) GetActive(customerID uint) (*models.ShipmentAddress, error) {
	var address models.ShipmentAddress
	err := r.db.Where("customer_id = ? AND is_active = ?", customerID, true).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// Create inserts an address.
func (r *GormShipmentAddressRepository) Create(address *models.ShipmentAddress) error {
	return r.db.Create(address).Error
}

// Updates applies a partial update.
func (r *GormShipmentAddressRepository) Updates(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.ShipmentAddress{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes an address.
func (r *GormShipmentAddressRepository) Delete(id uint) error {
	return r.db.Delete(&models.ShipmentAddress{}, id).Error
}

// ListByCustomer returns all of a customer's addresses.
func (r *GormShipmentAddressRepository) ListByCustomer(customerID uint) ([]models.ShipmentAddress, error) {
	var addresses []models.ShipmentAddress
	err := r.db.Where("customer_id = ?", customerID).Order("is_default desc, id asc").Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// ClearDefault unsets the default flag on every address of a customer.
func (r *GormShipmentAddressRepository) ClearDefault(customerID uint) error {
	return r.db.Model(&models.ShipmentAddress{}).
		Where("customer_id = ? AND is_default = ?", customerID, true).
		Update("is_default", false).Error
}

// ClearActive unsets the active flag on every address of a customer.
func (r *GormShipmentAddressRepository) ClearActive(customerID uint) error {
	return r.db.Model(&models.ShipmentAddress{}).
		Where("customer_id = ? AND is_active = ?", customerID, true).
		Update("is_active", false).Error
}
