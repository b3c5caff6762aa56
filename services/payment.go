package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rentride/backend-rental/models"
)

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

func (s *PaymentService) Create(bookingID uint, paymentDate time.Time, amount float64, method string) (*models.Payment, error) {
	var count int64
	if err := s.db.Model(&models.Booking{}).Where("id = ?", bookingID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	payment := models.Payment{
		BookingID:     bookingID,
		PaymentDate:   paymentDate,
		Amount:        amount,
		PaymentMethod: method,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Preload("Booking").Preload("Booking.User").Preload("Booking.Car").
		First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Preload("Booking").Preload("Booking.User").Preload("Booking.Car").
		Order("payment_date DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *PaymentService) Update(id uint, req models.UpdatePaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.PaymentDate != nil {
		date, err := time.Parse(models.DateFormat, *req.PaymentDate)
		if err != nil {
			return nil, err
		}
		payment.PaymentDate = date
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		payment.PaymentMethod = *req.PaymentMethod
	}

	if err := s.db.Save(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) Delete(id uint) error {
	res := s.db.Delete(&models.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
