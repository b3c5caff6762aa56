package models

import "time"

type Car struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Make         string    `gorm:"size:100;not null" json:"make"`
	Model        string    `gorm:"size:100;not null" json:"model"`
	Year         int       `gorm:"not null" json:"year"`
	Color        string    `gorm:"size:50;not null" json:"color"`
	RentalRate   float64   `gorm:"not null" json:"rental_rate"`
	Availability bool      `gorm:"not null;default:true" json:"availability"`
	LocationID   uint      `gorm:"not null;index" json:"location_id"`
	ImageURL     string    `gorm:"size:500;not null" json:"image_url"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Location     *Location     `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"location,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Bookings     []Booking     `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Maintenance  []Maintenance `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Insurance    []Insurance   `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

type CreateCarRequest struct {
	Make        string  `json:"make" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	Color       string  `json:"color" binding:"required"`
	RentalRate  float64 `json:"rental_rate" binding:"required"`
	LocationID  uint    `json:"location_id" binding:"required"`
	ImageURL    string  `json:"image_url" binding:"required"`
	Description string  `json:"description,omitempty"`
}

type UpdateCarRequest struct {
	Make        *string  `json:"make,omitempty"`
	Model       *string  `json:"model,omitempty"`
	Year        *int     `json:"year,omitempty"`
	Color       *string  `json:"color,omitempty"`
	RentalRate  *float64 `json:"rental_rate,omitempty"`
	LocationID  *uint    `json:"location_id,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Description *string  `json:"description,omitempty"`
}
