// services/pricing_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"frontdesk-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fallback values used when an update supplies no explicit figure and no
// prior row exists to inherit from.
var (
	defaultBreakfastPrice     = decimal.NewFromInt(250)
	defaultSeasonalMultiplier = decimal.NewFromInt(1)
)

// seedPrices are the boot-time rate card, one row per room type.
// Breakfast seeds mirror the booking-side per-type table.
var seedPrices = map[models.RoomType]struct {
	Base      int64
	Breakfast int64
}{
	models.RoomTypeStandard: {1200, 250},
	models.RoomTypeSuperior: {1800, 250},
	models.RoomTypeDeluxe:   {2500, 250},
	models.RoomTypeFamily:   {3200, 350},
	models.RoomTypeHopIn:    {800, 150},
	models.RoomTypeZenith:   {5000, 350},
}

// PricingService is the single writer of room_type_pricings and
// pricing_histories. It never logs and never formats user-facing text;
// every failure comes back as a typed error for the controller to map.
type PricingService struct {
	DB *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{DB: db}
}

// PriceInfo is the service-level view of one current price.
type PriceInfo struct {
	RoomType           models.RoomType
	BasePrice          decimal.Decimal
	BreakfastPrice     decimal.Decimal
	NoBreakfast        decimal.Decimal
	WithBreakfast      decimal.Decimal
	SeasonalMultiplier decimal.Decimal
	EffectiveFrom      time.Time
	EffectiveUntil     *time.Time
}

// PriceUpdate carries the optional fields of an update; nil means "keep
// the previous value (or the default on first-time initialization)".
type PriceUpdate struct {
	BasePrice          *decimal.Decimal
	BreakfastPrice     *decimal.Decimal
	SeasonalMultiplier *decimal.Decimal
	Reason             string
	ChangedBy          string
}

// PriceQuote is a price calculation result, rounded to 2 decimal places.
type PriceQuote struct {
	BaseAmount      decimal.Decimal
	BreakfastAmount decimal.Decimal
	Total           decimal.Decimal
}

func priceInfoFrom(row *models.RoomTypePricing) *PriceInfo {
	return &PriceInfo{
		RoomType:           row.RoomType,
		BasePrice:          row.BasePrice,
		BreakfastPrice:     row.BreakfastPrice,
		NoBreakfast:        row.BasePrice,
		WithBreakfast:      row.BasePrice.Add(row.BreakfastPrice),
		SeasonalMultiplier: row.SeasonalMultiplier,
		EffectiveFrom:      row.EffectiveFrom,
		EffectiveUntil:     row.EffectiveUntil,
	}
}

// currentRowQuery scopes tx to the row whose active window contains now.
func currentRowQuery(tx *gorm.DB, roomType models.RoomType, now time.Time) *gorm.DB {
	return tx.
		Where("room_type = ? AND is_active = ?", roomType, true).
		Where("effective_from <= ?", now).
		Where("effective_until IS NULL OR effective_until >= ?", now).
		Order("effective_from DESC")
}

// GetCurrentPrice returns the price whose effective window contains now,
// or ErrPriceNotFound if the room type was never initialized.
func (s *PricingService) GetCurrentPrice(roomType models.RoomType) (*PriceInfo, error) {
	var row models.RoomTypePricing
	now := time.Now().UTC()
	if err := currentRowQuery(s.DB, roomType, now).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPriceNotFound
		}
		return nil, fmt.Errorf("failed to read current price for %s: %w", roomType, err)
	}
	return priceInfoFrom(&row), nil
}

// GetAllCurrentPrices returns current prices in catalogue order. Room types
// without a current price are skipped rather than failing the whole call.
func (s *PricingService) GetAllCurrentPrices() ([]PriceInfo, error) {
	out := make([]PriceInfo, 0, len(models.AllRoomTypes))
	for _, rt := range models.AllRoomTypes {
		info, err := s.GetCurrentPrice(rt)
		if err != nil {
			if errors.Is(err, ErrPriceNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *info)
	}
	return out, nil
}

// UpdatePrice atomically retires the current row (if any), records the
// change in pricing_histories, and inserts the new open-ended row. The
// current-row read runs FOR UPDATE inside the transaction, so two racing
// updates for the same room type serialize: the loser blocks, then closes
// the winner's row instead of the one both started from. A room type with
// no prior row goes through the same path as first-time initialization.
func (s *PricingService) UpdatePrice(roomType models.RoomType, upd PriceUpdate) (*PriceInfo, error) {
	if !roomType.Valid() {
		return nil, ErrRoomTypeNotFound
	}

	var created models.RoomTypePricing
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var current *models.RoomTypePricing
		var row models.RoomTypePricing
		err := currentRowQuery(tx.Clauses(clause.Locking{Strength: "UPDATE"}), roomType, now).
			First(&row).Error
		switch {
		case err == nil:
			current = &row
		case errors.Is(err, gorm.ErrRecordNotFound):
			current = nil
		default:
			return fmt.Errorf("failed to read current price for %s: %w", roomType, err)
		}

		// Merge supplied values over the previous row, then hard defaults.
		newBase := decimal.Zero
		newBreakfast := defaultBreakfastPrice
		newMultiplier := defaultSeasonalMultiplier
		if current != nil {
			newBase = current.BasePrice
			newBreakfast = current.BreakfastPrice
			newMultiplier = current.SeasonalMultiplier
		}
		if upd.BasePrice != nil {
			newBase = *upd.BasePrice
		}
		if upd.BreakfastPrice != nil {
			newBreakfast = *upd.BreakfastPrice
		}
		if upd.SeasonalMultiplier != nil {
			newMultiplier = *upd.SeasonalMultiplier
		}

		if current != nil && (upd.BasePrice != nil || upd.BreakfastPrice != nil) {
			hist := models.PricingHistory{
				RoomType:          roomType,
				OldBasePrice:      current.BasePrice,
				OldBreakfastPrice: current.BreakfastPrice,
				NewBasePrice:      newBase,
				NewBreakfastPrice: newBreakfast,
				Reason:            upd.Reason,
				ChangedBy:         upd.ChangedBy,
				ChangedAt:         now,
			}
			if err := tx.Create(&hist).Error; err != nil {
				return fmt.Errorf("failed to record pricing history for %s: %w", roomType, err)
			}
		}

		if current != nil {
			if err := tx.Model(current).Updates(map[string]interface{}{
				"is_active":       false,
				"effective_until": now,
			}).Error; err != nil {
				return fmt.Errorf("failed to close current price for %s: %w", roomType, err)
			}
		}

		created = models.RoomTypePricing{
			RoomType:           roomType,
			BasePrice:          newBase,
			BreakfastPrice:     newBreakfast,
			SeasonalMultiplier: newMultiplier,
			IsActive:           true,
			EffectiveFrom:      now,
			EffectiveUntil:     nil,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to insert price for %s: %w", roomType, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return priceInfoFrom(&created), nil
}

// CalculatePrice quotes nights of the current type-level rate.
// baseAmount = basePrice * seasonalMultiplier * nights. Arithmetic stays at
// full precision; rounding happens once, on the returned figures.
func (s *PricingService) CalculatePrice(roomType models.RoomType, includeBreakfast bool, nights int) (*PriceQuote, error) {
	info, err := s.GetCurrentPrice(roomType)
	if err != nil {
		return nil, err
	}

	n := decimal.NewFromInt(int64(nights))
	baseAmount := info.BasePrice.Mul(info.SeasonalMultiplier).Mul(n)
	breakfastAmount := decimal.Zero
	if includeBreakfast {
		breakfastAmount = info.BreakfastPrice.Mul(n)
	}

	return &PriceQuote{
		BaseAmount:      baseAmount.Round(2),
		BreakfastAmount: breakfastAmount.Round(2),
		Total:           baseAmount.Add(breakfastAmount).Round(2),
	}, nil
}

// InitializeDefaults seeds one active row per room type that has none.
// Idempotent: types with a current price are left untouched.
func (s *PricingService) InitializeDefaults() error {
	for _, rt := range models.AllRoomTypes {
		_, err := s.GetCurrentPrice(rt)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrPriceNotFound) {
			return err
		}

		seed := seedPrices[rt]
		base := decimal.NewFromInt(seed.Base)
		breakfast := decimal.NewFromInt(seed.Breakfast)
		if _, err := s.UpdatePrice(rt, PriceUpdate{
			BasePrice:      &base,
			BreakfastPrice: &breakfast,
			Reason:         "initial default pricing",
			ChangedBy:      "system",
		}); err != nil {
			return err
		}
	}
	return nil
}

// GetHistory returns the newest price changes for one room type, capped at
// limit (default 10 when limit <= 0).
func (s *PricingService) GetHistory(roomType models.RoomType, limit int) ([]models.PricingHistory, error) {
	if !roomType.Valid() {
		return nil, ErrRoomTypeNotFound
	}
	if limit <= 0 {
		limit = 10
	}

	var records []models.PricingHistory
	if err := s.DB.
		Where("room_type = ?", roomType).
		Order("changed_at DESC, id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read pricing history for %s: %w", roomType, err)
	}
	return records, nil
}
