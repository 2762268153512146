// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Per-night breakfast rates charged at booking time. This table is
// deliberately static per room type and separate from the editable
// rate-card breakfast price used for quoting.
var breakfastPerNight = map[models.RoomType]int64{
	models.RoomTypeStandard: 250,
	models.RoomTypeSuperior: 250,
	models.RoomTypeDeluxe:   250,
	models.RoomTypeFamily:   350,
	models.RoomTypeHopIn:    150,
	models.RoomTypeZenith:   350,
}

func breakfastRate(rt models.RoomType) decimal.Decimal {
	if v, ok := breakfastPerNight[rt]; ok {
		return decimal.NewFromInt(v)
	}
	return decimal.NewFromInt(250)
}

// GuestDetails are the identity fields captured at the front desk.
type GuestDetails struct {
	FirstName string
	LastName  string
	Phone     string
	IDType    string
	IDNumber  string
}

// WalkInRequest is the input of the booking transaction. Validation of
// field formats (ID type, parseable date) happens at the boundary; the
// service only enforces business rules.
type WalkInRequest struct {
	RoomID            uint
	Guest             GuestDetails
	CheckOutDate      time.Time
	BreakfastIncluded bool
}

// BookingService owns walk-in bookings and is the only code path that
// reads room availability and flips a room to OCCUPIED.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// nightsUntil counts billable nights from now to checkout, rounding any
// partial day up. 25 hours out is 2 nights.
func nightsUntil(now, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(now).Hours() / 24))
}

func isDuplicateKeyErr(err error) bool {
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") ||
		strings.Contains(lc, "unique") ||
		strings.Contains(lc, "constraint")
}

// CreateWalkIn books a room for a guest checking in right now.
// The room is re-read FOR UPDATE inside the same transaction that inserts
// the booking and flips the status, so of two racing attempts on one room
// exactly one commits; the other sees OCCUPIED and gets ErrRoomNotAvailable.
func (s *BookingService) CreateWalkIn(req WalkInRequest) (*models.WalkInBooking, error) {
	now := time.Now().UTC()
	nights := nightsUntil(now, req.CheckOutDate)

	// Retry the whole transaction on reference-code collision, same as the
	// generated-code collision loop used for check-in tokens.
	const maxAttempts = 5
	for attempt := 0; attempt < maxAttempts; attempt++ {
		booking := models.WalkInBooking{
			ReferenceCode:     utils.NewBookingReference(),
			RoomID:            req.RoomID,
			FirstName:         req.Guest.FirstName,
			LastName:          req.Guest.LastName,
			Phone:             req.Guest.Phone,
			IDType:            req.Guest.IDType,
			IDNumber:          req.Guest.IDNumber,
			CheckIn:           now,
			CheckOutDate:      req.CheckOutDate,
			Nights:            nights,
			BreakfastIncluded: req.BreakfastIncluded,
			Status:            models.BookingStatusCheckedIn,
		}

		err := s.DB.Transaction(func(tx *gorm.DB) error {
			var room models.Room
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&room, req.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrRoomNotAvailable
				}
				return fmt.Errorf("failed to read room %d: %w", req.RoomID, err)
			}
			if room.Status != models.RoomStatusClean {
				return ErrRoomNotAvailable
			}
			if nights <= 0 {
				return ErrInvalidDateRange
			}

			n := decimal.NewFromInt(int64(nights))
			booking.PricePerNight = room.Price
			booking.RoomTotal = room.Price.Mul(n).Round(2)
			booking.BreakfastTotal = decimal.Zero
			if req.BreakfastIncluded {
				booking.BreakfastTotal = breakfastRate(room.Type).Mul(n).Round(2)
			}
			booking.TotalAmount = booking.RoomTotal.Add(booking.BreakfastTotal)

			if err := tx.Omit("Room").Create(&booking).Error; err != nil {
				return fmt.Errorf("failed to create booking: %w", err)
			}
			if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
				Update("status", models.RoomStatusOccupied).Error; err != nil {
				return fmt.Errorf("failed to occupy room %d: %w", room.ID, err)
			}

			booking.Room = room
			booking.Room.Status = models.RoomStatusOccupied
			return nil
		})
		if err != nil {
			if isDuplicateKeyErr(err) {
				continue
			}
			return nil, err
		}
		return &booking, nil
	}
	return nil, fmt.Errorf("failed to create booking after %d reference collisions", maxAttempts)
}

// GetByReference loads one booking with its room.
func (s *BookingService) GetByReference(reference string) (*models.WalkInBooking, error) {
	var booking models.WalkInBooking
	if err := s.DB.Preload("Room").
		Where("reference_code = ?", reference).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to read booking %s: %w", reference, err)
	}
	return &booking, nil
}

// GetAll returns every booking, newest first.
func (s *BookingService) GetAll() ([]models.WalkInBooking, error) {
	var bookings []models.WalkInBooking
	if err := s.DB.Preload("Room").
		Order("created_at DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Checkout closes a booking and releases its room back to CLEAN. Both
// writes commit together.
func (s *BookingService) Checkout(reference string) (*models.WalkInBooking, error) {
	var booking models.WalkInBooking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("reference_code = ?", reference).
			First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to read booking %s: %w", reference, err)
		}
		if booking.Status == models.BookingStatusCheckedOut {
			return ErrAlreadyCheckedOut
		}

		now := time.Now().UTC()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingStatusCheckedOut,
			"checked_out_at": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to close booking %s: %w", reference, err)
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("status", models.RoomStatusClean).Error; err != nil {
			return fmt.Errorf("failed to release room %d: %w", booking.RoomID, err)
		}

		booking.Status = models.BookingStatusCheckedOut
		booking.CheckedOutAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
