package db

import (
	"github.com/kairos-ukr/ses-sub000/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Installation{},
		&models.TimeOffEntry{},
		&models.AssignmentRow{},
	); err != nil {
		return nil, err
	}

	return database, nil
}
