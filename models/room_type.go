package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoomType maps the bnb_room_type table. The accomodation_type column keeps
// the spelling the production schema uses.
type RoomType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	BnbID string `gorm:"type:char(36);index;column:bnb_id" json:"bnb_id"`

	AccommodationType string  `gorm:"column:accomodation_type;size:100" json:"accomodation_type"`
	Description       string  `gorm:"type:text" json:"description"`
	PricePerNight     float64 `gorm:"column:price_per_night" json:"price_per_night"`
	Quantity          int     `gorm:"column:quantity" json:"quantity"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Photos    datatypes.JSON `gorm:"column:photos" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (RoomType) TableName() string { return "bnb_room_type" }
