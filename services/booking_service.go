// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"

	"github.com/lvnzip001/butterworth-bnb/models"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService wraps *gorm.DB for the booking lifecycle: reservation
// submission, status transitions (which drive the availability counters),
// room reassignment and deletion-with-archival.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	BnbID        string
	RoomTypeID   uint
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	CheckinDate  time.Time
	CheckoutDate time.Time
	Adults       int
	Children     int
	TotalCost    float64
}

func isDuplicateKeyErr(err error) bool {
	var my *mysqldrv.MySQLError
	if errors.As(err, &my) {
		return my.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

// CreateBooking inserts a pending reservation with a fresh booking code.
// Codes are generated client-visible ("B" + base36 suffix); collisions are
// unlikely but validated, with a retry loop on duplicates.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if strings.TrimSpace(in.GuestName) == "" || strings.TrimSpace(in.GuestEmail) == "" || strings.TrimSpace(in.GuestPhone) == "" {
		return nil, fmt.Errorf("%w: guest name, email and phone are required", ErrValidation)
	}
	if !in.CheckoutDate.After(in.CheckinDate) {
		return nil, ErrInvalidDateRange
	}
	if in.TotalCost <= 0 {
		return nil, fmt.Errorf("%w: invalid total cost", ErrValidation)
	}
	if in.BnbID == "" || in.RoomTypeID == 0 {
		return nil, fmt.Errorf("%w: no bnb or room type selected", ErrValidation)
	}
	if in.Adults <= 0 {
		in.Adults = 1
	}
	if in.Children < 0 {
		in.Children = 0
	}

	var rt models.RoomType
	if err := s.DB.Where("id = ? AND bnb_id = ?", in.RoomTypeID, in.BnbID).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("db error checking room type %d: %w", in.RoomTypeID, err)
	}

	maxRetries := 5
	var createErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		code, gErr := utils.GenerateBookingCode()
		if gErr != nil {
			return nil, fmt.Errorf("failed to generate booking code: %w", gErr)
		}

		var existing models.Booking
		err := s.DB.Where("booking_id = ?", code).First(&existing).Error
		if err == nil {
			log.Printf("booking code collision (attempt %d) - retrying", attempt+1)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check booking code: %w", err)
		}

		bk := models.Booking{
			BookingRecord: models.BookingRecord{
				BookingCode:  code,
				BnbID:        in.BnbID,
				RoomTypeID:   in.RoomTypeID,
				GuestName:    strings.TrimSpace(in.GuestName),
				GuestEmail:   strings.TrimSpace(in.GuestEmail),
				GuestPhone:   strings.TrimSpace(in.GuestPhone),
				CheckinDate:  truncateToDate(in.CheckinDate),
				CheckoutDate: truncateToDate(in.CheckoutDate),
				Adults:       in.Adults,
				Children:     in.Children,
				TotalCost:    in.TotalCost,
				Status:       models.StatusPending,
			},
		}
		createErr = s.DB.Create(&bk).Error
		if createErr == nil {
			return &bk, nil
		}
		if isDuplicateKeyErr(createErr) {
			log.Printf("booking code collision on insert (attempt %d) - retrying", attempt+1)
			continue
		}
		return nil, fmt.Errorf("failed to create booking: %w", createErr)
	}
	return nil, fmt.Errorf("failed to create booking after retries: %w", createErr)
}

// GetAll feeds the admin dashboard table and calendar, ordered by check-in.
func (s *BookingService) GetAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Order("checkin_date ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.First(&bk, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &bk, nil
}

func (s *BookingService) GetByCode(code string) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.Where("booking_id = ?", utils.NormalizeBookingCode(code)).First(&bk).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &bk, nil
}

// UpdateStatus transitions a booking between pending and complete and applies
// the matching availability delta in the same transaction, so a counter that
// would go negative also reverts the status change.
//
//	pending  -> complete  consumes inventory (delta -1)
//	complete -> pending   releases inventory (delta +1)
func (s *BookingService) UpdateStatus(id uint, newStatus string) error {
	if newStatus != models.StatusPending && newStatus != models.StatusComplete {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		oldStatus := booking.Status
		if oldStatus == newStatus {
			return nil
		}

		if err := tx.Model(&models.Booking{}).
			Where("id = ?", id).
			Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		stay := StayFromBooking(booking.BookingRecord)
		switch {
		case oldStatus == models.StatusPending && newStatus == models.StatusComplete:
			return adjustAvailability(tx, stay, -1)
		case oldStatus == models.StatusComplete && newStatus == models.StatusPending:
			return adjustAvailability(tx, stay, +1)
		}
		return nil
	})
}

// UpdateRoomType reassigns a booking to another room type. No availability
// adjustment happens here; the admin is expected to toggle status if the
// booking already consumed inventory.
func (s *BookingService) UpdateRoomType(id uint, roomTypeID uint) error {
	var rt models.RoomType
	if err := s.DB.First(&rt, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomTypeNotFound
		}
		return fmt.Errorf("db error checking room type %d: %w", roomTypeID, err)
	}
	if err := s.DB.Model(&models.Booking{}).
		Where("id = ?", id).
		Update("room_type_id", roomTypeID).Error; err != nil {
		return fmt.Errorf("update room type: %w", err)
	}
	return nil
}

// Delete archives and removes a booking. Completed bookings release their
// inventory (+1 per night) and land in archive_refunds with the operator's
// reason and refund status; pending bookings land in
// archive_cancelled_no_payment and touch no counters. The archive insert
// happens strictly before the delete.
func (s *BookingService) Delete(id uint, reason, refundStatus string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		now := time.Now().UTC()

		if booking.Status == models.StatusComplete {
			if !models.ValidRefundStatus(refundStatus) {
				return fmt.Errorf("%w: %q", ErrInvalidRefundStatus, refundStatus)
			}
			if err := adjustAvailability(tx, StayFromBooking(booking.BookingRecord), +1); err != nil {
				return err
			}
			archive := models.ArchiveRefund{
				BookingRecord: booking.BookingRecord,
				Reason:        reason,
				RefundStatus:  refundStatus,
				ArchivedAt:    now,
			}
			if err := tx.Create(&archive).Error; err != nil {
				return fmt.Errorf("archive booking: %w", err)
			}
		} else {
			archive := models.ArchiveCancelledNoPayment{
				BookingRecord: booking.BookingRecord,
				Reason:        reason,
				ArchivedAt:    now,
			}
			if err := tx.Create(&archive).Error; err != nil {
				return fmt.Errorf("archive booking: %w", err)
			}
		}

		if err := tx.Delete(&models.Booking{}, id).Error; err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}
		return nil
	})
}
