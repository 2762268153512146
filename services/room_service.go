package services

import (
	"errors"
	"fmt"
	"strings"

	"frontdesk-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomService covers room provisioning and housekeeping status changes.
// It never sets OCCUPIED; that transition belongs to BookingService.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.Status == "" {
		room.Status = models.RoomStatusClean
	}
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return ErrDuplicateRoomNumber
		}
		return fmt.Errorf("failed to create room %s: %w", room.RoomNumber, err)
	}
	return nil
}

// GetAll lists rooms, optionally filtered by status.
func (s *RoomService) GetAll(status string) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.Order("room_number ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to read room %d: %w", id, err)
	}
	return &room, nil
}

// UpdateStatus applies a housekeeping transition: CLEAN <-> MAINTENANCE.
// Occupied rooms are released only by checking the booking out, and
// nothing here may mark a room OCCUPIED.
func (s *RoomService) UpdateStatus(id uint, status string) (*models.Room, error) {
	if status != models.RoomStatusClean && status != models.RoomStatusMaintenance {
		return nil, ErrStatusChangeNotAllowed
	}

	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to read room %d: %w", id, err)
		}
		if room.Status == models.RoomStatusOccupied {
			return ErrStatusChangeNotAllowed
		}
		if err := tx.Model(&room).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", id, err)
		}
		room.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}
