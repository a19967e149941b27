package database

import (
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
)

// Seed guarantees the built-in admin account (id=1) exists. That row is
// protected from deletion, so every installation keeps at least one admin.
func Seed(db *gorm.DB) error {
	var admin models.User
	err := db.First(&admin, 1).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.User{
		ID:       1,
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrador",
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
