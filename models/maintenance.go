package models

import "time"

type Maintenance struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CarID           uint      `gorm:"not null;index" json:"car_id"`
	MaintenanceDate time.Time `gorm:"not null" json:"maintenance_date"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Cost            float64   `gorm:"not null" json:"cost"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Car *Car `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"car,omitempty"`
}

type CreateMaintenanceRequest struct {
	CarID           uint    `json:"car_id" binding:"required"`
	MaintenanceDate string  `json:"maintenance_date" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	Cost            float64 `json:"cost" binding:"required"`
}

type UpdateMaintenanceRequest struct {
	MaintenanceDate *string  `json:"maintenance_date,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Cost            *float64 `json:"cost,omitempty"`
}
