package models

import "time"

// Booking status values. "cancelled" is reserved for display mapping; no
// write path sets it.
const (
	StatusPending   = "pending"
	StatusComplete  = "complete"
	StatusCancelled = "cancelled"
)

// BookingRecord is the field set copied verbatim between the live bookings
// table and every archive counterpart. Keeping it as one embedded struct
// makes the copy explicit instead of an ad hoc field-by-field shuffle.
type BookingRecord struct {
	BookingCode  string    `gorm:"column:booking_id;size:16;index" json:"booking_id"`
	BnbID        string    `gorm:"type:char(36);column:bnb_id" json:"bnb_id"`
	RoomTypeID   uint      `gorm:"column:room_type_id;index" json:"room_type_id"`
	GuestName    string    `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestEmail   string    `gorm:"column:guest_email;size:150" json:"guest_email"`
	GuestPhone   string    `gorm:"column:guest_phone;size:50" json:"guest_phone"`
	CheckinDate  time.Time `gorm:"column:checkin_date;type:date" json:"checkin_date"`
	CheckoutDate time.Time `gorm:"column:checkout_date;type:date" json:"checkout_date"`
	Adults       int       `gorm:"column:adults;default:1" json:"adults"`
	Children     int       `gorm:"column:children;default:0" json:"children"`
	TotalCost    float64   `gorm:"column:total_cost" json:"total_cost"`
	Status       string    `gorm:"column:status;size:16" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type Booking struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	BookingRecord `gorm:"embedded"`
}

func (Booking) TableName() string { return "bookings" }

// Nights returns the length of the stay in nights (checkout day excluded).
func (r BookingRecord) Nights() int {
	n := int(r.CheckoutDate.Sub(r.CheckinDate).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
