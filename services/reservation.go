package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rentride/backend-rental/models"
)

type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// claimCar atomically flips the car's availability flag to false.
// The conditional update closes the check-then-act window: when two
// requests race for the same car, only one sees an affected row.
func claimCar(tx *gorm.DB, carID uint) error {
	res := tx.Model(&models.Car{}).
		Where("id = ? AND availability = ?", carID, true).
		Update("availability", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.Car{}).Where("id = ?", carID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrCarUnavailable
	}
	return nil
}

// releaseCar flips the car's availability flag back to true.
func releaseCar(tx *gorm.DB, carID uint) error {
	return tx.Model(&models.Car{}).
		Where("id = ?", carID).
		Update("availability", true).
		Error
}

func (s *ReservationService) Create(userID, carID uint, reservationDate, pickupDate time.Time) (*models.Reservation, error) {
	reservation := models.Reservation{
		UserID:          userID,
		CarID:           carID,
		ReservationDate: reservationDate,
		PickupDate:      pickupDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := claimCar(tx, carID); err != nil {
			return err
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Complete records the return date and frees the car, both in one
// transaction.
func (s *ReservationService) Complete(id uint, returnDate time.Time) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !reservation.Active() {
			return ErrReservationClosed
		}

		if err := tx.Model(&reservation).Update("return_date", returnDate).Error; err != nil {
			return err
		}
		reservation.ReturnDate = &returnDate

		return releaseCar(tx, reservation.CarID)
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Delete removes the reservation and, when it was still active, frees
// the car.
func (s *ReservationService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&reservation).Error; err != nil {
			return err
		}

		if reservation.Active() {
			return releaseCar(tx, reservation.CarID)
		}
		return nil
	})
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.Preload("User").Preload("Car").First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// GetAll lists reservations, scoped to one user when userID is non-zero.
func (s *ReservationService) GetAll(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	q := s.db.Preload("Car")
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Order("reservation_date DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
