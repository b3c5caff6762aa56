package models

import "time"

type Location struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:150;not null" json:"name"`
	Address       string    `gorm:"size:255;not null" json:"address"`
	ContactNumber string    `gorm:"size:30;not null" json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Cars []Car `gorm:"foreignKey:LocationID" json:"cars,omitempty"`
}

type CreateLocationRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	ContactNumber string `json:"contact_number" binding:"required"`
}

type UpdateLocationRequest struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
}
