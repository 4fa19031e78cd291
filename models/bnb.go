package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Bnb struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Address      string    `gorm:"type:text" json:"address"`
	ContactEmail string    `gorm:"size:150" json:"contact_email"`
	ContactPhone string    `gorm:"size:50" json:"contact_phone"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Bnb) TableName() string { return "bnb" }

func (b *Bnb) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
