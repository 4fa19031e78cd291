// services/availability_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lvnzip001/butterworth-bnb/models"

	"gorm.io/gorm"
)

// AvailabilityService owns the per-night inventory counters.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// Stay identifies the date range and room a booking occupies.
type Stay struct {
	BnbID        string
	RoomTypeID   uint
	CheckinDate  time.Time
	CheckoutDate time.Time
}

func StayFromBooking(b models.BookingRecord) Stay {
	return Stay{
		BnbID:        b.BnbID,
		RoomTypeID:   b.RoomTypeID,
		CheckinDate:  b.CheckinDate,
		CheckoutDate: b.CheckoutDate,
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StayDates enumerates every night of the stay: [checkin, checkout). The
// check-out day itself is excluded, so an N-night stay yields N dates.
func StayDates(checkin, checkout time.Time) []time.Time {
	start := truncateToDate(checkin)
	end := truncateToDate(checkout)
	var dates []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Adjust applies delta to every night of the stay inside one transaction, so
// a failure on any date rolls back the dates already touched.
func (s *AvailabilityService) Adjust(stay Stay, delta int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return adjustAvailability(tx, stay, delta)
	})
}

// adjustAvailability walks the stay one date at a time. Semantics per date:
//   - row exists: new = old + delta; a result below zero aborts the whole
//     operation, otherwise the row is updated
//   - row missing, delta > 0: insert, clamped to the room type's physical
//     quantity so a single insert can never exceed inventory
//   - row missing, delta < 0: nothing to decrement, log and move on
func adjustAvailability(tx *gorm.DB, stay Stay, delta int) error {
	if stay.BnbID == "" || stay.RoomTypeID == 0 {
		return fmt.Errorf("%w: bnb_id=%q room_type_id=%d", ErrMissingStayRefs, stay.BnbID, stay.RoomTypeID)
	}
	dates := StayDates(stay.CheckinDate, stay.CheckoutDate)
	if len(dates) == 0 {
		return ErrInvalidDateRange
	}

	for _, d := range dates {
		var av models.Availability
		err := tx.
			Where("bnb_id = ? AND room_type_id = ? AND date = ?", stay.BnbID, stay.RoomTypeID, d).
			First(&av).Error

		switch {
		case err == nil:
			qty := av.AvailableQuantity + delta
			if qty < 0 {
				return fmt.Errorf("%w: cannot reduce below zero for %s", ErrNegativeAvailability, d.Format("2006-01-02"))
			}
			if err := tx.Model(&models.Availability{}).
				Where("bnb_id = ? AND room_type_id = ? AND date = ?", stay.BnbID, stay.RoomTypeID, d).
				Update("available_quantity", qty).Error; err != nil {
				return fmt.Errorf("update availability for %s: %w", d.Format("2006-01-02"), err)
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			if delta <= 0 {
				log.Printf("no availability row to decrease for %s (bnb=%s room_type=%d)",
					d.Format("2006-01-02"), stay.BnbID, stay.RoomTypeID)
				continue
			}
			var rt models.RoomType
			if rtErr := tx.Select("quantity").First(&rt, stay.RoomTypeID).Error; rtErr != nil {
				if errors.Is(rtErr, gorm.ErrRecordNotFound) {
					return ErrRoomTypeNotFound
				}
				return fmt.Errorf("fetch room type %d: %w", stay.RoomTypeID, rtErr)
			}
			qty := delta
			if qty > rt.Quantity {
				qty = rt.Quantity
			}
			row := models.Availability{
				BnbID:             stay.BnbID,
				RoomTypeID:        stay.RoomTypeID,
				Date:              d,
				AvailableQuantity: qty,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert availability for %s: %w", d.Format("2006-01-02"), err)
			}

		default:
			return fmt.Errorf("fetch availability for %s: %w", d.Format("2006-01-02"), err)
		}
	}
	return nil
}

// ListRange returns the counters for a bnb over [from, to) ordered by date,
// for the public availability lookup.
func (s *AvailabilityService) ListRange(bnbID string, from, to time.Time) ([]models.Availability, error) {
	if !to.After(from) {
		return nil, ErrInvalidDateRange
	}
	var rows []models.Availability
	if err := s.DB.
		Where("bnb_id = ? AND date >= ? AND date < ?", bnbID, truncateToDate(from), truncateToDate(to)).
		Order("date").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	return rows, nil
}
