package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentride/backend-rental/models"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

func (s *BookingService) Create(userID, carID uint, start, end time.Time, totalAmount float64) (*models.Booking, error) {
	booking := models.Booking{
		BookingNumber:   uuid.New().String(),
		UserID:          userID,
		CarID:           carID,
		RentalStartDate: start,
		RentalEndDate:   end,
		TotalAmount:     totalAmount,
		Status:          models.BookingStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := claimCar(tx, carID); err != nil {
			return err
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Update applies partial changes. Completed and cancelled bookings are
// terminal; a cancelled booking revived to pending would hold the car
// without the availability flag backing it. A transition out of pending
// frees the car.
func (s *BookingService) Update(id uint, req models.UpdateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if booking.Status == models.BookingStatusCompleted {
			return ErrBookingCompleted
		}
		if booking.Status == models.BookingStatusCancelled {
			return ErrBookingCancelled
		}

		wasPending := booking.Status == models.BookingStatusPending

		if req.RentalEndDate != nil {
			end, err := time.Parse(models.DateFormat, *req.RentalEndDate)
			if err != nil {
				return err
			}
			booking.RentalEndDate = end
		}
		if req.TotalAmount != nil {
			booking.TotalAmount = *req.TotalAmount
		}
		if req.Status != nil {
			booking.Status = models.BookingStatus(*req.Status)
		}

		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if wasPending && booking.Status != models.BookingStatusPending {
			return releaseCar(tx, booking.CarID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return err
		}

		if booking.Status == models.BookingStatusPending {
			return releaseCar(tx, booking.CarID)
		}
		return nil
	})
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Car").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetAll lists bookings, scoped to one user when userID is non-zero.
func (s *BookingService) GetAll(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	q := s.db.Preload("Car")
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Order("rental_start_date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
