package models

import "time"

// Refund status values an operator can attach when archiving a completed
// booking.
const (
	RefundRefunded    = "refunded"
	RefundNotRefunded = "not_refunded"
	RefundPartial     = "partial"
)

func ValidRefundStatus(s string) bool {
	switch s {
	case RefundRefunded, RefundNotRefunded, RefundPartial:
		return true
	}
	return false
}

// ArchiveBooking is the permanent booking archive the stats and customer
// screens read. Rows land here when a checked-in booking is checked out.
type ArchiveBooking struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	BookingRecord `gorm:"embedded"`
	ArchivedAt    time.Time `gorm:"column:archived_at" json:"archived_at"`
}

func (ArchiveBooking) TableName() string { return "archive_bookings" }

// ArchiveRefund holds completed bookings deleted by an operator, with the
// deletion reason and how the payment was settled.
type ArchiveRefund struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	BookingRecord `gorm:"embedded"`
	Reason        string    `gorm:"type:text" json:"reason"`
	RefundStatus  string    `gorm:"column:refund_status;size:32" json:"refund_status"`
	ArchivedAt    time.Time `gorm:"column:archived_at" json:"archived_at"`
}

func (ArchiveRefund) TableName() string { return "archive_refunds" }

// ArchiveCancelledNoPayment holds pending bookings deleted before any payment
// was received.
type ArchiveCancelledNoPayment struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	BookingRecord `gorm:"embedded"`
	Reason        string    `gorm:"type:text" json:"reason"`
	ArchivedAt    time.Time `gorm:"column:archived_at" json:"archived_at"`
}

func (ArchiveCancelledNoPayment) TableName() string { return "archive_cancelled_no_payment" }

// ArchiveCheckinBooking is the booking copy written at check-in. It is
// transient: undo removes it, checkout moves it into archive_bookings.
type ArchiveCheckinBooking struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	BookingRecord `gorm:"embedded"`
	ArchivedAt    time.Time `gorm:"column:archived_at" json:"archived_at"`
}

func (ArchiveCheckinBooking) TableName() string { return "archive_checkin" }

// ArchiveCheckin is the historical copy of a check-in record.
type ArchiveCheckin struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	CheckinRecord `gorm:"embedded"`
	ArchivedAt    time.Time `gorm:"column:archived_at" json:"archived_at"`
}

func (ArchiveCheckin) TableName() string { return "archive_checkins" }

// ArchiveCheckout is the consolidated record written when a guest checks out.
type ArchiveCheckout struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	BookingCode string `gorm:"column:booking_id;size:16;index" json:"booking_id"`
	GuestName   string `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestEmail  string `gorm:"column:guest_email;size:150" json:"guest_email"`
	GuestPhone  string `gorm:"column:guest_phone;size:50" json:"guest_phone"`

	RoomInspected bool      `gorm:"column:room_inspected" json:"room_inspected"`
	KeyCollected  bool      `gorm:"column:key_collected" json:"key_collected"`
	Comments      string    `gorm:"type:text" json:"comments"`
	CheckoutTime  time.Time `gorm:"column:checkout_time" json:"checkout_time"`
	ArchivedAt    time.Time `gorm:"column:archived_at" json:"archived_at"`
}

func (ArchiveCheckout) TableName() string { return "archive_checkout" }
