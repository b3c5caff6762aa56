package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rentride/backend-rental/models"
)

type LocationService struct {
	db *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{db: db}
}

func (s *LocationService) Create(req models.CreateLocationRequest) (*models.Location, error) {
	location := models.Location{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	}
	if err := s.db.Create(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *LocationService) GetByID(id uint) (*models.Location, error) {
	var location models.Location
	if err := s.db.Preload("Cars").First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (s *LocationService) GetAll() ([]models.Location, error) {
	var locations []models.Location
	if err := s.db.Order("id ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *LocationService) Update(id uint, req models.UpdateLocationRequest) (*models.Location, error) {
	var location models.Location
	if err := s.db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.ContactNumber != nil {
		location.ContactNumber = *req.ContactNumber
	}

	if err := s.db.Save(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

// Delete refuses to remove a location that still owns cars. This is a
// domain error, distinct from not-found.
func (s *LocationService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var location models.Location
		if err := tx.First(&location, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var cars int64
		if err := tx.Model(&models.Car{}).Where("location_id = ?", id).Count(&cars).Error; err != nil {
			return err
		}
		if cars > 0 {
			return ErrLocationHasCars
		}

		return tx.Delete(&location).Error
	})
}
