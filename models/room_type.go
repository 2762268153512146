package models

// RoomType is the fixed room-type catalogue. Pricing rows and rooms both
// reference these values; they are not stored as a table of their own.
type RoomType string

const (
	RoomTypeStandard RoomType = "STANDARD"
	RoomTypeSuperior RoomType = "SUPERIOR"
	RoomTypeDeluxe   RoomType = "DELUXE"
	RoomTypeFamily   RoomType = "FAMILY"
	RoomTypeHopIn    RoomType = "HOP_IN"
	RoomTypeZenith   RoomType = "ZENITH"
)

// AllRoomTypes lists every room type in catalogue order.
var AllRoomTypes = []RoomType{
	RoomTypeStandard,
	RoomTypeSuperior,
	RoomTypeDeluxe,
	RoomTypeFamily,
	RoomTypeHopIn,
	RoomTypeZenith,
}

func (rt RoomType) Valid() bool {
	for _, t := range AllRoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}
