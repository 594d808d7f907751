package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_owner_position,priority:1"`
	Street       string    `gorm:"type:text;not null;default:''"`
	Number       string    `gorm:"type:varchar(32);not null;default:''"`
	Neighborhood string    `gorm:"type:text;not null;default:''"`
	Position     int       `gorm:"not null;default:0;index:idx_addresses_owner_position,priority:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
