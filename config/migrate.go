package config

import (
	"log"

	"github.com/ILoveTech2001/JALAI-2/models"
	"gorm.io/gorm"
)

func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Donation{},
		&models.Orphanage{},
		&models.Notification{},
		&models.Review{},
		&models.Payment{},
		&models.RefreshToken{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully...")
	return nil
}

func ResetAndMigrate(db *gorm.DB) error {
	if err := db.Migrator().DropTable(allModels()...); err != nil {
		log.Printf("Failed to drop tables: %v", err)
		return err
	}

	log.Println("All tables dropped successfully.")

	return Migrate(db)
}
