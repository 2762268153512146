package services

import (
	"strings"
	"sync"
	"testing"
	"time"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkInRequest(roomID uint, checkOut time.Time, breakfast bool) WalkInRequest {
	return WalkInRequest{
		RoomID: roomID,
		Guest: GuestDetails{
			FirstName: "Ari",
			LastName:  "Tan",
			Phone:     "+66-81-000-0000",
			IDType:    models.IDTypePassport,
			IDNumber:  "AB1234567",
		},
		CheckOutDate:      checkOut,
		BreakfastIncluded: breakfast,
	}
}

func TestCreateWalkInHappyPath(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createRoom(t, db, "101", models.RoomTypeStandard, 1200, models.RoomStatusClean)

	booking, err := svc.CreateWalkIn(walkInRequest(room.ID, time.Now().Add(48*time.Hour), true))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(booking.ReferenceCode, "WI-"))
	assert.Equal(t, 2, booking.Nights)
	requireDecimal(t, "1200", booking.PricePerNight)
	requireDecimal(t, "2400", booking.RoomTotal)
	requireDecimal(t, "500", booking.BreakfastTotal)
	requireDecimal(t, "2900", booking.TotalAmount)
	assert.Equal(t, models.BookingStatusCheckedIn, booking.Status)
	assert.Equal(t, "101", booking.Room.RoomNumber)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, got.Status)
}

func TestCreateWalkInWithoutBreakfast(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createRoom(t, db, "103", models.RoomTypeHopIn, 800, models.RoomStatusClean)

	booking, err := svc.CreateWalkIn(walkInRequest(room.ID, time.Now().Add(24*time.Hour), false))
	require.NoError(t, err)

	assert.Equal(t, 1, booking.Nights)
	requireDecimal(t, "800", booking.RoomTotal)
	requireDecimal(t, "0", booking.BreakfastTotal)
	requireDecimal(t, "800", booking.TotalAmount)
}

// Booking totals come from the room's own price, not the rate card; the
// breakfast charge comes from the static per-type table.
func TestCreateWalkInUsesRoomPriceAndTypeBreakfastRate(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	// Rate card says FAMILY costs 3200; this specific room is sold at 3000.
	require.NoError(t, NewPricingService(db).InitializeDefaults())
	room := createRoom(t, db, "301", models.RoomTypeFamily, 3000, models.RoomStatusClean)

	booking, err := svc.CreateWalkIn(walkInRequest(room.ID, time.Now().Add(48*time.Hour), true))
	require.NoError(t, err)

	requireDecimal(t, "6000", booking.RoomTotal)
	requireDecimal(t, "700", booking.BreakfastTotal) // FAMILY: 350/night
	requireDecimal(t, "6700", booking.TotalAmount)
}

func TestCreateWalkInCeilsPartialNights(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createRoom(t, db, "102", models.RoomTypeStandard, 1200, models.RoomStatusClean)

	booking, err := svc.CreateWalkIn(walkInRequest(room.ID, time.Now().Add(25*time.Hour), false))
	require.NoError(t, err)
	assert.Equal(t, 2, booking.Nights)
}

func TestCreateWalkInRejectsPastOrSameDayCheckout(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createRoom(t, db, "101", models.RoomTypeStandard, 1200, models.RoomStatusClean)

	for _, checkOut := range []time.Time{
		time.Now().Add(-24 * time.Hour),
		time.Now().Add(-time.Minute),
	} {
		_, err := svc.CreateWalkIn(walkInRequest(room.ID, checkOut, false))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	}

	// No writes happened.
	var bookingCount int64
	db.Model(&models.WalkInBooking{}).Count(&bookingCount)
	assert.EqualValues(t, 0, bookingCount)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomStatusClean, got.Status)
}

func TestCreateWalkInRejectsUnavailableRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	occupied := createRoom(t, db, "201", models.RoomTypeSuperior, 1800, models.RoomStatusOccupied)
	maintenance := createRoom(t, db, "202", models.RoomTypeDeluxe, 2500, models.RoomStatusMaintenance)

	for _, roomID := range []uint{occupied.ID, maintenance.ID, 9999} {
		_, err := svc.CreateWalkIn(walkInRequest(roomID, time.Now().Add(24*time.Hour), false))
		assert.ErrorIs(t, err, ErrRoomNotAvailable)
	}

	var bookingCount int64
	db.Model(&models.WalkInBooking{}).Count(&bookingCount)
	assert.EqualValues(t, 0, bookingCount)
}

// Two concurrent attempts on one CLEAN room: exactly one wins, the loser
// observes the committed OCCUPIED status.
func TestCreateWalkInDoubleBookingRace(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createRoom(t, db, "101", models.RoomTypeStandard, 1200, models.RoomStatusClean)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateWalkIn(walkInRequest(room.ID, time.Now().Add(48*time.Hour), false))
		}(i)
	}
	wg.Wait()

	successes, unavailable := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrRoomNotAvailable):
			unavailable++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, unavailable)

	var bookingCount int64
	db.Model(&models.WalkInBooking{}).Count(&bookingCount)
	assert.EqualValues(t, 1, bookingCount)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, got.Status)
}

func TestGetByReference(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createRoom(t, db, "101", models.RoomTypeStandard, 1200, models.RoomStatusClean)

	created, err := svc.CreateWalkIn(walkInRequest(room.ID, time.Now().Add(24*time.Hour), false))
	require.NoError(t, err)

	got, err := svc.GetByReference(created.ReferenceCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "101", got.Room.RoomNumber)

	_, err = svc.GetByReference("WI-DOESNOTEXIST")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	var refs []string
	for _, number := range []string{"101", "102", "103"} {
		room := createRoom(t, db, number, models.RoomTypeStandard, 1200, models.RoomStatusClean)
		booking, err := svc.CreateWalkIn(walkInRequest(room.ID, time.Now().Add(24*time.Hour), false))
		require.NoError(t, err)
		refs = append(refs, booking.ReferenceCode)
		time.Sleep(2 * time.Millisecond)
	}

	bookings, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, refs[2], bookings[0].ReferenceCode)
	assert.Equal(t, refs[0], bookings[2].ReferenceCode)
}

func TestCheckoutReleasesRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createRoom(t, db, "101", models.RoomTypeStandard, 1200, models.RoomStatusClean)

	created, err := svc.CreateWalkIn(walkInRequest(room.ID, time.Now().Add(24*time.Hour), false))
	require.NoError(t, err)

	closed, err := svc.Checkout(created.ReferenceCode)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedOut, closed.Status)
	require.NotNil(t, closed.CheckedOutAt)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomStatusClean, got.Status)

	_, err = svc.Checkout(created.ReferenceCode)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)

	_, err = svc.Checkout("WI-DOESNOTEXIST")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
