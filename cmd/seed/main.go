package main

import (
	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin("admin@example.com", "admin12345"); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	categories := []models.Category{
		{Name: "Electronics", Description: "Phones, audio and smart devices", SortOrder: 1},
		{Name: "Clothing", Description: "Apparel for every season", SortOrder: 2},
		{Name: "Home & Kitchen", Description: "Everyday household goods", SortOrder: 3},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
		}
	}

	seller := seedUser(stdLog, "seller@example.com", "seller12345", constants.RoleSeller, "Sample Seller", "Sample Store", true)
	seedUser(stdLog, "customer@example.com", "customer12345", constants.RoleCustomer, "Sample Customer", "", true)

	if seller == nil {
		return
	}

	var electronics models.Category
	if err := models.DB.Where("name = ?", "Electronics").First(&electronics).Error; err != nil {
		stdLog.Printf("Failed to load Electronics category: %v", err)
		return
	}

	var count int64
	models.DB.Model(&models.Product{}).Where("seller_id = ?", seller.ID).Count(&count)
	if count > 0 {
		stdLog.Printf("Sample products already seeded")
		return
	}

	product := models.Product{
		SellerID:    seller.ID,
		CategoryID:  electronics.ID,
		Name:        "Wireless Bluetooth Earphones",
		Description: "High quality sound, long battery life, comfortable to wear.",
		Images: models.StringArray{
			"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
		},
		IsActive: true,
		Variants: []models.ProductVariant{
			{
				Color:         "black",
				Size:          "standard",
				Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
				Stock:         50,
				IsAvailable:   true,
				PackedWeightG: 120,
			},
			{
				Color:         "white",
				Size:          "standard",
				Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(109.99)),
				Stock:         30,
				IsAvailable:   true,
				PackedWeightG: 120,
			},
		},
	}
	if err := models.DB.Create(&product).Error; err != nil {
		stdLog.Printf("Failed to create sample product: %v", err)
		return
	}
	stdLog.Printf("Created sample product: %s", product.Name)
}

func seedUser(stdLog interface{ Printf(string, ...interface{}) }, email, password, role, fullName, storeName string, verified bool) *models.User {
	var existing models.User
	if err := models.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		stdLog.Printf("User already exists: %s", email)
		return &existing
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash password for %s: %v", email, err)
		return nil
	}
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		StoreName:    storeName,
		Role:         role,
		IsVerified:   verified,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		stdLog.Printf("Failed to create user %s: %v", email, err)
		return nil
	}
	stdLog.Printf("Created user: %s (%s)", email, role)
	return &user
}
