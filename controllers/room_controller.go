// controllers/room_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms handles GET /api/rooms?status=
func (rc *RoomController) GetRooms(c *gin.Context) {
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	rooms, err := rc.RoomSvc.GetAll(status)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CreateRoom handles POST /api/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(room.RoomNumber) == "" {
		utils.JSONError(c, http.StatusBadRequest, "roomNumber is required")
		return
	}
	if !room.Type.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type")
		return
	}

	if err := rc.RoomSvc.Create(&room); err != nil {
		if errors.Is(err, services.ErrDuplicateRoomNumber) {
			utils.JSONError(c, http.StatusConflict, "room number already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

type UpdateRoomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRoomStatus handles PATCH /api/rooms/:id/status
func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var payload UpdateRoomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := rc.RoomSvc.UpdateStatus(uint(id), strings.ToUpper(strings.TrimSpace(payload.Status)))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "room_not_found")
		case errors.Is(err, services.ErrStatusChangeNotAllowed):
			utils.JSONError(c, http.StatusConflict, "status_change_not_allowed")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update room status")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
