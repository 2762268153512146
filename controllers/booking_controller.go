// controllers/booking_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

type GuestPayload struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	IDType    string `json:"idType" binding:"required"`
	IDNumber  string `json:"idNumber" binding:"required"`
}

type CreateWalkInPayload struct {
	RoomID            uint         `json:"roomId" binding:"required"`
	Guest             GuestPayload `json:"guest" binding:"required"`
	CheckOutDate      string       `json:"checkOutDate" binding:"required"`
	BreakfastIncluded bool         `json:"breakfastIncluded"`
}

// parseCheckOutDate accepts RFC3339 or a bare date; a bare date means
// midnight local time on that day.
func parseCheckOutDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

func bookingResponse(b *models.WalkInBooking) gin.H {
	return gin.H{
		"reference": b.ReferenceCode,
		"guest": gin.H{
			"firstName": b.FirstName,
			"lastName":  b.LastName,
			"phone":     b.Phone,
			"idType":    b.IDType,
			"idNumber":  b.IDNumber,
		},
		"room": gin.H{
			"id":         b.RoomID,
			"roomNumber": b.Room.RoomNumber,
			"type":       b.Room.Type,
			"floor":      b.Room.Floor,
		},
		"checkIn":           b.CheckIn,
		"checkOutDate":      b.CheckOutDate,
		"nights":            b.Nights,
		"pricePerNight":     b.PricePerNight,
		"breakfastIncluded": b.BreakfastIncluded,
		"roomTotal":         b.RoomTotal,
		"breakfastTotal":    b.BreakfastTotal,
		"totalAmount":       b.TotalAmount,
		"status":            b.Status,
		"checkedOutAt":      b.CheckedOutAt,
	}
}

// CreateWalkIn handles POST /api/bookings/walk-in
func (bc *BookingController) CreateWalkIn(c *gin.Context) {
	var payload CreateWalkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	idType := strings.ToUpper(strings.TrimSpace(payload.Guest.IDType))
	if !models.ValidIDType(idType) {
		utils.JSONError(c, http.StatusBadRequest, "invalid idType")
		return
	}

	checkOut, err := parseCheckOutDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOutDate must be a valid date")
		return
	}

	booking, err := bc.BookingSvc.CreateWalkIn(services.WalkInRequest{
		RoomID: payload.RoomID,
		Guest: services.GuestDetails{
			FirstName: strings.TrimSpace(payload.Guest.FirstName),
			LastName:  strings.TrimSpace(payload.Guest.LastName),
			Phone:     strings.TrimSpace(payload.Guest.Phone),
			IDType:    idType,
			IDNumber:  strings.TrimSpace(payload.Guest.IDNumber),
		},
		CheckOutDate:      checkOut,
		BreakfastIncluded: payload.BreakfastIncluded,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotAvailable):
			utils.JSONError(c, http.StatusConflict, "room_not_available")
		case errors.Is(err, services.ErrInvalidDateRange):
			utils.JSONError(c, http.StatusBadRequest, "invalid_date_range")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, bookingResponse(booking))
}

// GetBookings handles GET /api/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.BookingSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}

	out := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingResponse(&bookings[i]))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetBookingByReference handles GET /api/bookings/:reference
func (bc *BookingController) GetBookingByReference(c *gin.Context) {
	reference := strings.TrimSpace(c.Param("reference"))

	booking, err := bc.BookingSvc.GetByReference(reference)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking_not_found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to read booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookingResponse(booking))
}

// CheckoutBooking handles POST /api/bookings/:reference/checkout
func (bc *BookingController) CheckoutBooking(c *gin.Context) {
	reference := strings.TrimSpace(c.Param("reference"))

	booking, err := bc.BookingSvc.Checkout(reference)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking_not_found")
		case errors.Is(err, services.ErrAlreadyCheckedOut):
			utils.JSONError(c, http.StatusConflict, "already_checked_out")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to checkout booking")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookingResponse(booking))
}
