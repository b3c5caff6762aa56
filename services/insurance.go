package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rentride/backend-rental/models"
)

type InsuranceService struct {
	db *gorm.DB
}

func NewInsuranceService(db *gorm.DB) *InsuranceService {
	return &InsuranceService{db: db}
}

func (s *InsuranceService) Create(carID uint, provider, policyNumber string, start, end time.Time) (*models.Insurance, error) {
	var count int64
	if err := s.db.Model(&models.Car{}).Where("id = ?", carID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	record := models.Insurance{
		CarID:        carID,
		Provider:     provider,
		PolicyNumber: policyNumber,
		StartDate:    start,
		EndDate:      end,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *InsuranceService) GetByID(id uint) (*models.Insurance, error) {
	var record models.Insurance
	if err := s.db.Preload("Car").First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *InsuranceService) GetAll() ([]models.Insurance, error) {
	var records []models.Insurance
	if err := s.db.Preload("Car").Order("start_date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *InsuranceService) GetByCar(carID uint) ([]models.Insurance, error) {
	var records []models.Insurance
	err := s.db.Where("car_id = ?", carID).
		Order("start_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *InsuranceService) Update(id uint, req models.UpdateInsuranceRequest) (*models.Insurance, error) {
	var record models.Insurance
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Provider != nil {
		record.Provider = *req.Provider
	}
	if req.PolicyNumber != nil {
		record.PolicyNumber = *req.PolicyNumber
	}
	if req.StartDate != nil {
		date, err := time.Parse(models.DateFormat, *req.StartDate)
		if err != nil {
			return nil, err
		}
		record.StartDate = date
	}
	if req.EndDate != nil {
		date, err := time.Parse(models.DateFormat, *req.EndDate)
		if err != nil {
			return nil, err
		}
		record.EndDate = date
	}

	if err := s.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *InsuranceService) Delete(id uint) error {
	res := s.db.Delete(&models.Insurance{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
