package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rentride/backend-rental/models"
)

type CarService struct {
	db *gorm.DB
}

func NewCarService(db *gorm.DB) *CarService {
	return &CarService{db: db}
}

func (s *CarService) Create(req models.CreateCarRequest) (*models.Car, error) {
	var count int64
	if err := s.db.Model(&models.Location{}).Where("id = ?", req.LocationID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	car := models.Car{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		RentalRate:   req.RentalRate,
		Availability: true,
		LocationID:   req.LocationID,
		ImageURL:     req.ImageURL,
		Description:  req.Description,
	}
	if err := s.db.Create(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (s *CarService) GetByID(id uint) (*models.Car, error) {
	var car models.Car
	if err := s.db.Preload("Location").First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}

func (s *CarService) GetAll() ([]models.Car, error) {
	var cars []models.Car
	if err := s.db.Preload("Location").Order("id ASC").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// GetAvailable lists cars that can currently be reserved, optionally
// filtered by location.
func (s *CarService) GetAvailable(locationID uint) ([]models.Car, error) {
	var cars []models.Car
	q := s.db.Preload("Location").Where("availability = ?", true)
	if locationID != 0 {
		q = q.Where("location_id = ?", locationID)
	}
	if err := q.Order("id ASC").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (s *CarService) Update(id uint, req models.UpdateCarRequest) (*models.Car, error) {
	var car models.Car
	if err := s.db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Make != nil {
		car.Make = *req.Make
	}
	if req.Model != nil {
		car.Model = *req.Model
	}
	if req.Year != nil {
		car.Year = *req.Year
	}
	if req.Color != nil {
		car.Color = *req.Color
	}
	if req.RentalRate != nil {
		car.RentalRate = *req.RentalRate
	}
	if req.LocationID != nil {
		car.LocationID = *req.LocationID
	}
	if req.ImageURL != nil {
		car.ImageURL = *req.ImageURL
	}
	if req.Description != nil {
		car.Description = *req.Description
	}

	if err := s.db.Save(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (s *CarService) Delete(id uint) error {
	res := s.db.Delete(&models.Car{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
