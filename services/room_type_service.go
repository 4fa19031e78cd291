// services/room_type_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/lvnzip001/butterworth-bnb/models"

	"gorm.io/gorm"
)

// RoomTypeService backs the public room listing and the admin pricing editor.
type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) ListAll() ([]models.RoomType, error) {
	var list []models.RoomType
	if err := s.DB.Order("price_per_night ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve room types: %w", err)
	}
	return list, nil
}

func (s *RoomTypeService) ListByBnb(bnbID string) ([]models.RoomType, error) {
	var list []models.RoomType
	if err := s.DB.Where("bnb_id = ?", bnbID).Order("price_per_night ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve room types: %w", err)
	}
	return list, nil
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room type: %w", err)
	}
	return &rt, nil
}

// UpdatePricing writes the admin pricing editor changes. Quantity changes do
// not rewrite existing availability rows; future counters pick up the new
// ceiling when the adjuster seeds them.
func (s *RoomTypeService) UpdatePricing(id uint, pricePerNight float64, quantity int) (*models.RoomType, error) {
	if pricePerNight <= 0 {
		return nil, fmt.Errorf("%w: price per night must be positive", ErrValidation)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}

	var rt models.RoomType
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return err
		}
		return tx.Model(&rt).Updates(map[string]interface{}{
			"price_per_night": pricePerNight,
			"quantity":        quantity,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	rt.PricePerNight = pricePerNight
	rt.Quantity = quantity
	return &rt, nil
}
