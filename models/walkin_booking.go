package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Walk-in booking statuses.
const (
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
)

// Accepted guest ID document types.
const (
	IDTypePassport      = "PASSPORT"
	IDTypeNationalID    = "NATIONAL_ID"
	IDTypeDriverLicense = "DRIVER_LICENSE"
)

func ValidIDType(t string) bool {
	switch t {
	case IDTypePassport, IDTypeNationalID, IDTypeDriverLicense:
		return true
	}
	return false
}

// WalkInBooking is a front-desk booking created at check-in time.
// Price fields are snapshots taken when the booking was created; they do
// not follow later room or rate-card edits. Immutable after creation
// except Status/CheckedOutAt.
type WalkInBooking struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `json:"reference" gorm:"column:reference_code;size:64;uniqueIndex"`
	RoomID        uint   `json:"roomId" gorm:"column:room_id;index"`

	FirstName string `json:"firstName" gorm:"column:first_name;size:128"`
	LastName  string `json:"lastName" gorm:"column:last_name;size:128"`
	Phone     string `json:"phone" gorm:"size:32"`
	IDType    string `json:"idType" gorm:"column:id_type;size:32"`
	IDNumber  string `json:"idNumber" gorm:"column:id_number;size:64"`

	CheckIn      time.Time `json:"checkIn" gorm:"column:check_in"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"column:check_out_date"`
	Nights       int       `json:"nights"`

	PricePerNight     decimal.Decimal `json:"pricePerNight" gorm:"column:price_per_night;type:decimal(10,2)"`
	BreakfastIncluded bool            `json:"breakfastIncluded" gorm:"column:breakfast_included"`
	RoomTotal         decimal.Decimal `json:"roomTotal" gorm:"column:room_total;type:decimal(12,2)"`
	BreakfastTotal    decimal.Decimal `json:"breakfastTotal" gorm:"column:breakfast_total;type:decimal(12,2)"`
	TotalAmount       decimal.Decimal `json:"totalAmount" gorm:"column:total_amount;type:decimal(12,2)"`

	Status       string     `json:"status" gorm:"size:32;index"`
	CheckedOutAt *time.Time `json:"checkedOutAt,omitempty" gorm:"column:checked_out_at"`

	Room Room `json:"room,omitempty" gorm:"foreignKey:RoomID;references:ID"`
}
