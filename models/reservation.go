package models

import "time"

type Reservation struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	CarID           uint       `gorm:"not null;index" json:"car_id"`
	ReservationDate time.Time  `gorm:"not null" json:"reservation_date"`
	PickupDate      time.Time  `gorm:"not null" json:"pickup_date"`
	ReturnDate      *time.Time `json:"return_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Car  *Car  `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"car,omitempty"`
}

// Active means the reservation still holds the car.
func (r *Reservation) Active() bool {
	return r.ReturnDate == nil
}

type CreateReservationRequest struct {
	CarID           uint   `json:"car_id" binding:"required"`
	UserID          uint   `json:"user_id,omitempty"`
	ReservationDate string `json:"reservation_date" binding:"required"`
	PickupDate      string `json:"pickup_date" binding:"required"`
}

type CompleteReservationRequest struct {
	ReturnDate string `json:"return_date" binding:"required"`
}
