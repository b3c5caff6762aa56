package models

import "gorm.io/gorm"

// AutoMigrate migrates every rental entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Location{},
		&Car{},
		&Reservation{},
		&Booking{},
		&Payment{},
		&Maintenance{},
		&Insurance{},
	)
}

// DateFormat is the wire format for all request dates.
const DateFormat = "2006-01-02"
