package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	BookingNumber   string        `gorm:"size:36;uniqueIndex;not null" json:"booking_number"`
	UserID          uint          `gorm:"not null;index" json:"user_id"`
	CarID           uint          `gorm:"not null;index" json:"car_id"`
	RentalStartDate time.Time     `gorm:"not null" json:"rental_start_date"`
	RentalEndDate   time.Time     `gorm:"not null" json:"rental_end_date"`
	TotalAmount     float64       `gorm:"not null" json:"total_amount"`
	Status          BookingStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	User     *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Car      *Car      `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"car,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

type CreateBookingRequest struct {
	CarID           uint    `json:"car_id" binding:"required"`
	UserID          uint    `json:"user_id,omitempty"`
	RentalStartDate string  `json:"rental_start_date" binding:"required"`
	RentalEndDate   string  `json:"rental_end_date" binding:"required"`
	TotalAmount     float64 `json:"total_amount" binding:"required"`
}

type UpdateBookingRequest struct {
	Status        *string  `json:"status,omitempty"`
	RentalEndDate *string  `json:"rental_end_date,omitempty"`
	TotalAmount   *float64 `json:"total_amount,omitempty"`
}
