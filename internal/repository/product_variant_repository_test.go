package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/uniquemj/ecommerce-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRepoTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.AuditLog{},
	), "migrate")
	return db
}

func createVariant(t *testing.T, db *gorm.DB, stock int) *models.ProductVariant {
	t.Helper()
	product := &models.Product{SellerID: 1, CategoryID: 1, Name: "Test Product", IsActive: true}
	require.NoError(t, db.Create(product).Error)
	variant := &models.ProductVariant{
		ProductID:   product.ID,
		Color:       "black",
		Size:        "M",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		Stock:       stock,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(variant).Error)
	return variant
}

func TestDecrementStockGuardsAgainstOversell(t *testing.T) {
	db := newRepoTestDB(t, "variant_decrement")
	repo := NewProductVariantRepository(db)
	variant := createVariant(t, db, 5)

	affected, err := repo.DecrementStock(variant.ID, 3)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected, "decrement within stock should take")

	affected, err = repo.DecrementStock(variant.ID, 3)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected, "decrement past stock must not take")

	var got models.ProductVariant
	require.NoError(t, db.First(&got, variant.ID).Error)
	require.Equal(t, 2, got.Stock)
}

func TestDecrementStockRejectsNonPositiveQuantity(t *testing.T) {
	db := newRepoTestDB(t, "variant_nonpositive")
	repo := NewProductVariantRepository(db)
	variant := createVariant(t, db, 5)

	affected, err := repo.DecrementStock(variant.ID, 0)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)

	affected, err = repo.DecrementStock(variant.ID, -2)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)

	var got models.ProductVariant
	require.NoError(t, db.First(&got, variant.ID).Error)
	require.Equal(t, 5, got.Stock)
}

func TestIncrementStockRestores(t *testing.T) {
	db := newRepoTestDB(t, "variant_increment")
	repo := NewProductVariantRepository(db)
	variant := createVariant(t, db, 1)

	require.NoError(t, repo.IncrementStock(variant.ID, 4))

	var got models.ProductVariant
	require.NoError(t, db.First(&got, variant.ID).Error)
	require.Equal(t, 5, got.Stock)
}

func TestGetByIDMissingVariantIsNil(t *testing.T) {
	db := newRepoTestDB(t, "variant_missing")
	repo := NewProductVariantRepository(db)

	variant, err := repo.GetByID(9999)
	require.NoError(t, err)
	require.Nil(t, variant)
}
