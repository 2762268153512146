package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room statuses. OCCUPIED is only ever set by the booking transaction;
// housekeeping toggles CLEAN <-> MAINTENANCE.
const (
	RoomStatusClean       = "CLEAN"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusMaintenance = "MAINTENANCE"
)

type Room struct {
	gorm.Model

	RoomNumber string   `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Type       RoomType `json:"type" gorm:"type:varchar(20);index"`
	Status     string   `json:"status" gorm:"type:varchar(20);index"`
	Floor      string   `json:"floor" gorm:"type:varchar(10)"`

	// Price is the denormalized per-night rate this room is sold at. It is
	// a snapshot set at provisioning time; editing the type-level rate card
	// does not touch it.
	Price decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`

	MaxOccupancy int `json:"maxOccupancy" gorm:"column:max_occupancy"`

	// Features holds bed type, amenities and similar opaque structured data
	// the frontend renders but the backend never interprets.
	Features datatypes.JSON `json:"features,omitempty" gorm:"column:features"`
}
