package models

import "time"

// Availability is the per-night inventory counter, keyed by
// (bnb_id, room_type_id, date). A missing row means the date is not yet
// tracked; rows are only created on an increase. available_quantity never
// goes below zero.
type Availability struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	BnbID             string    `gorm:"type:char(36);column:bnb_id;uniqueIndex:idx_availability_slot" json:"bnb_id"`
	RoomTypeID        uint      `gorm:"column:room_type_id;uniqueIndex:idx_availability_slot" json:"room_type_id"`
	Date              time.Time `gorm:"column:date;type:date;uniqueIndex:idx_availability_slot" json:"date"`
	AvailableQuantity int       `gorm:"column:available_quantity" json:"available_quantity"`
}

func (Availability) TableName() string { return "availability" }
