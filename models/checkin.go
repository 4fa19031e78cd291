package models

import "time"

// CheckinRecord carries the check-in form fields plus the guest/stay fields
// denormalized from the booking, so the record stays self-describing after
// the booking row is retired. Shared between the live checkins table and its
// archive copy.
type CheckinRecord struct {
	BookingCode      string    `gorm:"column:booking_id;size:16;index" json:"booking_id"`
	GuestName        string    `gorm:"column:guest_name;size:255" json:"guest_name"`
	IDNumber         string    `gorm:"column:id_number;size:50" json:"id_number"`
	EmergencyContact string    `gorm:"column:emergency_contact;size:100" json:"emergency_contact"`
	CheckinTime      time.Time `gorm:"column:checkin_time" json:"checkin_time"`

	KeyHandedOver     bool   `gorm:"column:key_handed_over" json:"key_handed_over"`
	RulesAcknowledged bool   `gorm:"column:rules_acknowledged" json:"rules_acknowledged"`
	PaymentConfirmed  bool   `gorm:"column:payment_confirmed" json:"payment_confirmed"`
	RoomInspected     bool   `gorm:"column:room_inspected" json:"room_inspected"`
	Notes             string `gorm:"type:text" json:"notes"`

	// Denormalized from the booking at check-in time.
	GuestPhone   string    `gorm:"column:guest_phone;size:50" json:"guest_phone"`
	GuestEmail   string    `gorm:"column:guest_email;size:150" json:"guest_email"`
	CheckoutDate time.Time `gorm:"column:checkout_date;type:date" json:"checkout_date"`
	TotalCost    float64   `gorm:"column:total_cost" json:"total_cost"`
}

type Checkin struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	CheckinRecord `gorm:"embedded"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Checkin) TableName() string { return "checkins" }
