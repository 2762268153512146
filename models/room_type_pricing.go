package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomTypePricing is one effective price window for one room type.
// Rows are never deleted: a price update closes the current row
// (is_active=false, effective_until=now) and inserts a new open-ended one,
// so the table doubles as a timeline of past rate cards.
type RoomTypePricing struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time

	RoomType           RoomType        `json:"roomType" gorm:"column:room_type;type:varchar(20);index:idx_pricing_type_active"`
	BasePrice          decimal.Decimal `json:"basePrice" gorm:"column:base_price;type:decimal(10,2)"`
	BreakfastPrice     decimal.Decimal `json:"breakfastPrice" gorm:"column:breakfast_price;type:decimal(10,2)"`
	SeasonalMultiplier decimal.Decimal `json:"seasonalMultiplier" gorm:"column:seasonal_multiplier;type:decimal(6,3)"`

	IsActive       bool       `json:"isActive" gorm:"column:is_active;index:idx_pricing_type_active"`
	EffectiveFrom  time.Time  `json:"effectiveFrom" gorm:"column:effective_from"`
	EffectiveUntil *time.Time `json:"effectiveUntil,omitempty" gorm:"column:effective_until"`
}

// PricingHistory is an immutable audit record of one price change.
type PricingHistory struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time

	RoomType          RoomType        `json:"roomType" gorm:"column:room_type;type:varchar(20);index"`
	OldBasePrice      decimal.Decimal `json:"oldBasePrice" gorm:"column:old_base_price;type:decimal(10,2)"`
	OldBreakfastPrice decimal.Decimal `json:"oldBreakfastPrice" gorm:"column:old_breakfast_price;type:decimal(10,2)"`
	NewBasePrice      decimal.Decimal `json:"newBasePrice" gorm:"column:new_base_price;type:decimal(10,2)"`
	NewBreakfastPrice decimal.Decimal `json:"newBreakfastPrice" gorm:"column:new_breakfast_price;type:decimal(10,2)"`

	Reason    string    `json:"reason,omitempty" gorm:"type:text"`
	ChangedBy string    `json:"changedBy" gorm:"column:changed_by;size:64"`
	ChangedAt time.Time `json:"changedAt" gorm:"column:changed_at"`
}
