package service

import (
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ShipmentAddressInput is the create/update payload.
type ShipmentAddressInput struct {
	FullName  string `json:"full_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,max=30"`
	Region    string `json:"region" validate:"max=100"`
	City      string `json:"city" validate:"required,max=100"`
	Street    string `json:"street" validate:"required,max=255"`
	IsDefault bool   `json:"is_default"`
}

// ShipmentAddressService manages customer delivery addresses. A customer
// has at most one default and at most one active address; both flags are
// flipped inside a transaction.
type ShipmentAddressService struct {
	addresses repository.ShipmentAddressRepository
	validate  *validator.Validate
}

// NewShipmentAddressService creates the shipment address service.
func NewShipmentAddressService(addresses repository.ShipmentAddressRepository) *ShipmentAddressService {
	return &ShipmentAddressService{
		addresses: addresses,
		validate:  validator.New(),
	}
}

// getOwned fetches an address and checks ownership.
func (s *ShipmentAddressService) getOwned(id, customerID uint) (*models.ShipmentAddress, error) {
	address, err := s.addresses.GetByIDAndCustomer(id, customerID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrShipmentAddrNotFound
	}
	return address, nil
}

// List returns all of a customer's addresses.
func (s *ShipmentAddressService) List(customerID uint) ([]models.ShipmentAddress, error) {
	return s.addresses.ListByCustomer(customerID)
}

// Create adds an address. The customer's first address becomes default and
// active on its own.
func (s *ShipmentAddressService) Create(customerID uint, input ShipmentAddressInput) (*models.ShipmentAddress, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, WrapValidation(err)
	}
	existing, err := s.addresses.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	first := len(existing) == 0

	address := &models.ShipmentAddress{
		CustomerID: customerID,
		FullName:   strings.TrimSpace(input.FullName),
		Phone:      strings.TrimSpace(input.Phone),
		Region:     strings.TrimSpace(input.Region),
		City:       strings.TrimSpace(input.City),
		Street:     strings.TrimSpace(input.Street),
		IsDefault:  first || input.IsDefault,
		IsActive:   first,
	}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		addressesTx := s.addresses.WithTx(tx)
		if address.IsDefault && !first {
			if err := addressesTx.ClearDefault(customerID); err != nil {
				return err
			}
		}
		return addressesTx.Create(address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// Update edits an address, owner only.
func (s *ShipmentAddressService) Update(id, customerID uint, input ShipmentAddressInput) (*models.ShipmentAddress, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, WrapValidation(err)
	}
	address, err := s.getOwned(id, customerID)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"full_name":  strings.TrimSpace(input.FullName),
		"phone":      strings.TrimSpace(input.Phone),
		"region":     strings.TrimSpace(input.Region),
		"city":       strings.TrimSpace(input.City),
		"street":     strings.TrimSpace(input.Street),
		"is_default": input.IsDefault,
	}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		addressesTx := s.addresses.WithTx(tx)
		if input.IsDefault && !address.IsDefault {
			if err := addressesTx.ClearDefault(customerID); err != nil {
				return err
			}
		}
		return addressesTx.Updates(id, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.getOwned(id, customerID)
}

// SetActive makes one address the active delivery target.
func (s *ShipmentAddressService) SetActive(id, customerID uint) (*models.ShipmentAddress, error) {
	if _, err := s.getOwned(id, customerID); err != nil {
		return nil, err
	}
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		addressesTx := s.addresses.WithTx(tx)
		if err := addressesTx.ClearActive(customerID); err != nil {
			return err
		}
		return addressesTx.Updates(id, map[string]interface{}{"is_active": true})
	})
	if err != nil {
		return nil, err
	}
	return s.getOwned(id, customerID)
}

// Delete soft-deletes an address, owner only.
func (s *ShipmentAddressService) Delete(id, customerID uint) error {
	if _, err := s.getOwned(id, customerID); err != nil {
		return err
	}
	return s.addresses.Delete(id)
}
