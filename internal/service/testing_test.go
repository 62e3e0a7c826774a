package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShipmentAddress{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return db
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Order.DeliveryFee = "100.00"
	cfg.JWT.SecretKey = "test-secret-key-that-is-long-enough"
	cfg.JWT.ExpireHours = 24
	return cfg
}

func seedSeller(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	seller := &models.User{
		Email:        fmt.Sprintf("seller_%d@example.com", time.Now().UnixNano()),
		PasswordHash: "x",
		FullName:     "Test Seller",
		StoreName:    "Test Store",
		Role:         constants.RoleSeller,
		IsVerified:   true,
	}
	if err := db.Create(seller).Error; err != nil {
		t.Fatalf("create seller failed: %v", err)
	}
	return seller
}

func seedCustomer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	customer := &models.User{
		Email:        fmt.Sprintf("customer_%d@example.com", time.Now().UnixNano()),
		PasswordHash: "x",
		FullName:     "Test Customer",
		Role:         constants.RoleCustomer,
		IsVerified:   true,
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return customer
}

func seedVariant(t *testing.T, db *gorm.DB, sellerID uint, price string, stock int) *models.ProductVariant {
	t.Helper()
	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	category := &models.Category{Name: fmt.Sprintf("cat_%d", time.Now().UnixNano())}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{
		SellerID:   sellerID,
		CategoryID: category.ID,
		Name:       fmt.Sprintf("product_%d", time.Now().UnixNano()),
		IsActive:   true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	variant := &models.ProductVariant{
		ProductID:   product.ID,
		Color:       "black",
		Size:        "m",
		Price:       models.NewMoneyFromDecimal(amount),
		Stock:       stock,
		IsAvailable: true,
	}
	if err := db.Create(variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return variant
}

func seedActiveAddress(t *testing.T, db *gorm.DB, customerID uint) *models.ShipmentAddress {
	t.Helper()
	address := &models.ShipmentAddress{
		CustomerID: customerID,
		FullName:   "Test Customer",
		Phone:      "555-0100",
		City:       "Springfield",
		Street:     "12 Main St",
		IsDefault:  true,
		IsActive:   true,
	}
	if err := db.Create(address).Error; err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	return address
}

func variantStock(t *testing.T, db *gorm.DB, variantID uint) int {
	t.Helper()
	var variant models.ProductVariant
	if err := db.First(&variant, variantID).Error; err != nil {
		t.Fatalf("load variant failed: %v", err)
	}
	return variant.Stock
}
