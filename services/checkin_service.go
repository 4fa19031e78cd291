// services/checkin_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lvnzip001/butterworth-bnb/models"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckinService handles guest arrival and departure. Check-in retires the
// live booking row into archive copies, checkout consolidates those copies
// into the permanent archive. The most recent check-in can be undone until
// the next check-in or checkout overwrites the undo slot.
type CheckinService struct {
	DB *gorm.DB

	mu       sync.Mutex
	lastUndo *undoState
}

// undoState remembers what the last check-in wrote, so undo can reverse it
// row by row in the opposite order.
type undoState struct {
	Booking          models.BookingRecord
	CheckinID        uint
	ArchiveCheckinID uint
	ArchiveBookingID uint
}

func NewCheckinService(db *gorm.DB) *CheckinService {
	return &CheckinService{DB: db}
}

type CheckinInput struct {
	BookingCode       string
	IDNumber          string
	EmergencyContact  string
	CheckinTime       time.Time // zero value means "now"
	KeyHandedOver     bool
	RulesAcknowledged bool
	PaymentConfirmed  bool
	RoomInspected     bool
	Notes             string
}

type CheckoutInput struct {
	BookingCode   string
	RoomInspected bool
	KeyCollected  bool
	Comments      string
}

// CheckIn admits a guest against a completed (paid) booking. Inside one
// transaction it writes the live check-in record, an archive copy of that
// record, and an archive copy of the booking, then deletes the booking row.
// Availability counters are untouched; the stay already consumed inventory
// when the booking went complete.
func (s *CheckinService) CheckIn(in CheckinInput) (*models.Checkin, error) {
	code := utils.NormalizeBookingCode(in.BookingCode)
	if !utils.IsValidBookingCodeFormat(code) {
		return nil, fmt.Errorf("%w: invalid booking code %q", ErrValidation, in.BookingCode)
	}
	if strings.TrimSpace(in.IDNumber) == "" {
		return nil, fmt.Errorf("%w: guest ID number is required", ErrValidation)
	}

	var (
		checkin    models.Checkin
		archCI     models.ArchiveCheckin
		archBK     models.ArchiveCheckinBooking
		bookingRec models.BookingRecord
	)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", code).
			First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status != models.StatusComplete {
			return fmt.Errorf("%w: booking %s is %s, only paid bookings can check in",
				ErrInvalidStatus, code, booking.Status)
		}
		bookingRec = booking.BookingRecord

		now := time.Now().UTC()
		checkinTime := in.CheckinTime
		if checkinTime.IsZero() {
			checkinTime = now
		}
		rec := models.CheckinRecord{
			BookingCode:       booking.BookingCode,
			GuestName:         booking.GuestName,
			IDNumber:          strings.TrimSpace(in.IDNumber),
			EmergencyContact:  strings.TrimSpace(in.EmergencyContact),
			CheckinTime:       checkinTime.UTC(),
			KeyHandedOver:     in.KeyHandedOver,
			RulesAcknowledged: in.RulesAcknowledged,
			PaymentConfirmed:  in.PaymentConfirmed,
			RoomInspected:     in.RoomInspected,
			Notes:             in.Notes,
			GuestPhone:        booking.GuestPhone,
			GuestEmail:        booking.GuestEmail,
			CheckoutDate:      booking.CheckoutDate,
			TotalCost:         booking.TotalCost,
		}

		checkin = models.Checkin{CheckinRecord: rec}
		if err := tx.Create(&checkin).Error; err != nil {
			return fmt.Errorf("create checkin: %w", err)
		}
		archCI = models.ArchiveCheckin{CheckinRecord: rec, ArchivedAt: now}
		if err := tx.Create(&archCI).Error; err != nil {
			return fmt.Errorf("archive checkin: %w", err)
		}
		archBK = models.ArchiveCheckinBooking{BookingRecord: booking.BookingRecord, ArchivedAt: now}
		if err := tx.Create(&archBK).Error; err != nil {
			return fmt.Errorf("archive booking: %w", err)
		}
		if err := tx.Delete(&models.Booking{}, booking.ID).Error; err != nil {
			return fmt.Errorf("retire booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastUndo = &undoState{
		Booking:          bookingRec,
		CheckinID:        checkin.ID,
		ArchiveCheckinID: archCI.ID,
		ArchiveBookingID: archBK.ID,
	}
	s.mu.Unlock()

	return &checkin, nil
}

// UndoLastCheckin reverses the most recent check-in: the three rows it wrote
// are removed in reverse order and the booking row is restored with its
// original fields, still in complete status. Only the last check-in is
// undoable and only once.
func (s *CheckinService) UndoLastCheckin() (*models.Booking, error) {
	s.mu.Lock()
	state := s.lastUndo
	s.lastUndo = nil
	s.mu.Unlock()

	if state == nil {
		return nil, ErrNothingToUndo
	}

	var restored models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ArchiveCheckin{}, state.ArchiveCheckinID).Error; err != nil {
			return fmt.Errorf("remove archived checkin: %w", err)
		}
		if err := tx.Delete(&models.ArchiveCheckinBooking{}, state.ArchiveBookingID).Error; err != nil {
			return fmt.Errorf("remove archived booking: %w", err)
		}
		if err := tx.Delete(&models.Checkin{}, state.CheckinID).Error; err != nil {
			return fmt.Errorf("remove checkin: %w", err)
		}
		restored = models.Booking{BookingRecord: state.Booking}
		if err := tx.Create(&restored).Error; err != nil {
			return fmt.Errorf("restore booking: %w", err)
		}
		return nil
	})
	if err != nil {
		// The slot was consumed; a failed undo is not retryable because we
		// no longer know which rows survived.
		return nil, err
	}
	return &restored, nil
}

// Checkout closes out a stay. It writes the departure record, promotes the
// transient booking copy from archive_checkin into archive_bookings, and
// removes the live check-in row. The checked-out stay stops being undoable.
func (s *CheckinService) Checkout(in CheckoutInput) (*models.ArchiveCheckout, error) {
	code := utils.NormalizeBookingCode(in.BookingCode)

	var out models.ArchiveCheckout
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var checkin models.Checkin
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", code).
			First(&checkin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCheckinNotFound
			}
			return err
		}

		var stash models.ArchiveCheckinBooking
		if err := tx.Where("booking_id = ?", code).First(&stash).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMissingStayRefs
			}
			return err
		}

		now := time.Now().UTC()
		out = models.ArchiveCheckout{
			BookingCode:   checkin.BookingCode,
			GuestName:     checkin.GuestName,
			GuestEmail:    checkin.GuestEmail,
			GuestPhone:    checkin.GuestPhone,
			RoomInspected: in.RoomInspected,
			KeyCollected:  in.KeyCollected,
			Comments:      in.Comments,
			CheckoutTime:  now,
			ArchivedAt:    now,
		}
		if err := tx.Create(&out).Error; err != nil {
			return fmt.Errorf("create checkout record: %w", err)
		}

		permanent := models.ArchiveBooking{BookingRecord: stash.BookingRecord, ArchivedAt: now}
		if err := tx.Create(&permanent).Error; err != nil {
			return fmt.Errorf("archive booking: %w", err)
		}
		if err := tx.Delete(&models.ArchiveCheckinBooking{}, stash.ID).Error; err != nil {
			return fmt.Errorf("remove transient booking copy: %w", err)
		}
		if err := tx.Delete(&models.Checkin{}, checkin.ID).Error; err != nil {
			return fmt.Errorf("remove checkin: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.lastUndo != nil && s.lastUndo.Booking.BookingCode == code {
		s.lastUndo = nil
	}
	s.mu.Unlock()

	return &out, nil
}

// ListActive returns guests currently on site.
func (s *CheckinService) ListActive() ([]models.Checkin, error) {
	var list []models.Checkin
	if err := s.DB.Order("checkin_time DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve checkins: %w", err)
	}
	return list, nil
}

// History returns the archived check-in trail for a booking code.
func (s *CheckinService) History(code string) ([]models.ArchiveCheckin, error) {
	var list []models.ArchiveCheckin
	if err := s.DB.
		Where("booking_id = ?", utils.NormalizeBookingCode(code)).
		Order("archived_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve checkin history: %w", err)
	}
	return list, nil
}
