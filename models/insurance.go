package models

import "time"

type Insurance struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CarID        uint      `gorm:"not null;index" json:"car_id"`
	Provider     string    `gorm:"size:150;not null" json:"provider"`
	PolicyNumber string    `gorm:"size:100;not null" json:"policy_number"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null" json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Car *Car `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"car,omitempty"`
}

type CreateInsuranceRequest struct {
	CarID        uint   `json:"car_id" binding:"required"`
	Provider     string `json:"provider" binding:"required"`
	PolicyNumber string `json:"policy_number" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
}

type UpdateInsuranceRequest struct {
	Provider     *string `json:"provider,omitempty"`
	PolicyNumber *string `json:"policy_number,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
}
