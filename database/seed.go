package database

import (
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/divinebraids/salon-app/models"
	"github.com/divinebraids/salon-app/utils"
)

// EnsureDefaultAdmin creates the admin account on first boot so the
// back office is reachable before anyone touches the database by hand.
func EnsureDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := db.Create(&models.User{Username: "admin", Password: string(hashed)}).Error; err != nil {
		return err
	}

	utils.InfoLogger.Println("Default admin user created (username: admin) - change the password after first login")
	return nil
}
