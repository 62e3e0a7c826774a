package service

import (
	"errors"
	"testing"

	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"gorm.io/gorm"
)

func addressInput(name string, isDefault bool) ShipmentAddressInput {
	return ShipmentAddressInput{
		FullName:  name,
		Phone:     "555-0100",
		City:      "Springfield",
		Street:    "12 Main St",
		IsDefault: isDefault,
	}
}

func countFlagged(t *testing.T, db *gorm.DB, customerID uint, column string) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.ShipmentAddress{}).
		Where("customer_id = ? AND "+column+" = ?", customerID, true).
		Count(&count).Error; err != nil {
		t.Fatalf("count %s failed: %v", column, err)
	}
	return count
}

func TestFirstAddressBecomesDefaultAndActive(t *testing.T) {
	db := newTestDB(t, "addr_first")
	customer := seedCustomer(t, db)
	svc := NewShipmentAddressService(repository.NewShipmentAddressRepository(db))

	address, err := svc.Create(customer.ID, addressInput("Home", false))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !address.IsDefault || !address.IsActive {
		t.Fatalf("expected first address default and active, got %+v", address)
	}
}

func TestCreateDefaultClearsPreviousDefault(t *testing.T) {
	db := newTestDB(t, "addr_default")
	customer := seedCustomer(t, db)
	svc := NewShipmentAddressService(repository.NewShipmentAddressRepository(db))

	first, err := svc.Create(customer.ID, addressInput("Home", false))
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second, err := svc.Create(customer.ID, addressInput("Office", true))
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}
	if !second.IsDefault {
		t.Fatalf("expected second address default")
	}
	if got := countFlagged(t, db, customer.ID, "is_default"); got != 1 {
		t.Fatalf("expected exactly one default address, got %d", got)
	}

	var reloaded models.ShipmentAddress
	if err := db.First(&reloaded, first.ID).Error; err != nil {
		t.Fatalf("reload first failed: %v", err)
	}
	if reloaded.IsDefault {
		t.Fatalf("expected first address to lose default")
	}
}

func TestSetActiveIsExclusive(t *testing.T) {
	db := newTestDB(t, "addr_active")
	customer := seedCustomer(t, db)
	svc := NewShipmentAddressService(repository.NewShipmentAddressRepository(db))

	if _, err := svc.Create(customer.ID, addressInput("Home", false)); err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second, err := svc.Create(customer.ID, addressInput("Office", false))
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	activated, err := svc.SetActive(second.ID, customer.ID)
	if err != nil {
		t.Fatalf("set active failed: %v", err)
	}
	if !activated.IsActive {
		t.Fatalf("expected activated address active")
	}
	if got := countFlagged(t, db, customer.ID, "is_active"); got != 1 {
		t.Fatalf("expected exactly one active address, got %d", got)
	}
}

func TestAddressOwnershipEnforced(t *testing.T) {
	db := newTestDB(t, "addr_ownership")
	owner := seedCustomer(t, db)
	intruder := seedCustomer(t, db)
	svc := NewShipmentAddressService(repository.NewShipmentAddressRepository(db))

	address, err := svc.Create(owner.ID, addressInput("Home", false))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.SetActive(address.ID, intruder.ID); !errors.Is(err, ErrShipmentAddrNotFound) {
		t.Fatalf("expected not found for foreign customer, got: %v", err)
	}
	if err := svc.Delete(address.ID, intruder.ID); !errors.Is(err, ErrShipmentAddrNotFound) {
		t.Fatalf("expected delete to be rejected, got: %v", err)
	}
}

func TestAddressValidation(t *testing.T) {
	db := newTestDB(t, "addr_validation")
	customer := seedCustomer(t, db)
	svc := NewShipmentAddressService(repository.NewShipmentAddressRepository(db))

	input := addressInput("Home", false)
	input.City = ""
	if _, err := svc.Create(customer.ID, input); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}
