package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rentride/backend-rental/models"
)

type MaintenanceService struct {
	db *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{db: db}
}

func (s *MaintenanceService) Create(carID uint, date time.Time, description string, cost float64) (*models.Maintenance, error) {
	var count int64
	if err := s.db.Model(&models.Car{}).Where("id = ?", carID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	record := models.Maintenance{
		CarID:           carID,
		MaintenanceDate: date,
		Description:     description,
		Cost:            cost,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MaintenanceService) GetByID(id uint) (*models.Maintenance, error) {
	var record models.Maintenance
	if err := s.db.Preload("Car").First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *MaintenanceService) GetAll() ([]models.Maintenance, error) {
	var records []models.Maintenance
	if err := s.db.Preload("Car").Order("maintenance_date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByCar lists a car's maintenance history, newest first.
func (s *MaintenanceService) GetByCar(carID uint) ([]models.Maintenance, error) {
	var records []models.Maintenance
	err := s.db.Where("car_id = ?", carID).
		Order("maintenance_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *MaintenanceService) Update(id uint, req models.UpdateMaintenanceRequest) (*models.Maintenance, error) {
	var record models.Maintenance
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.MaintenanceDate != nil {
		date, err := time.Parse(models.DateFormat, *req.MaintenanceDate)
		if err != nil {
			return nil, err
		}
		record.MaintenanceDate = date
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Cost != nil {
		record.Cost = *req.Cost
	}

	if err := s.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MaintenanceService) Delete(id uint) error {
	res := s.db.Delete(&models.Maintenance{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
