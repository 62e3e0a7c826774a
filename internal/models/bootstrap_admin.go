package models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"gorm.io/gorm"
)

// InitDefaultAdmin creates the first admin account when none exists.
// Existing admins are never touched.
func InitDefaultAdmin(email, password string) error {
	if DB == nil {
		return errors.New("database not initialized")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = "admin@example.com"
	}
	if password == "" {
		password = "admin12345"
	}

	var existing User
	err := DB.Where("role = ?", "admin").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         "admin",
		IsVerified:   true,
	}
	return DB.Create(&admin).Error
}
