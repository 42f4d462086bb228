package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/store"
	"github.com/izlekapp/izlek_backend_v1/internal/utils"
)

// codeAttempts bounds the retries when a generated join code collides with
// the unique code index.
const codeAttempts = 5

type RoomService struct {
	Store store.Gateway
}

// Create stores a new room with the owner as its first participant and a
// fresh join code, retrying on a code collision.
func (s *RoomService) Create(ctx context.Context, in models.RoomCreate) (*models.Room, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("Oda adı boş olamaz")
	}
	if strings.TrimSpace(in.OwnerName) == "" {
		return nil, invalid("İsim boş olamaz")
	}

	ownerID := uuid.NewString()
	room := models.Room{
		ID:      uuid.NewString(),
		Name:    in.Name,
		OwnerID: ownerID,
		Participants: []models.RoomParticipant{{
			ID:         ownerID,
			Name:       in.OwnerName,
			StudyField: in.OwnerStudyField,
		}},
		TimerState: models.DefaultTimerState(),
		CreatedAt:  now(),
	}

	for attempt := 1; ; attempt++ {
		code, err := utils.GenerateJoinCode()
		if err != nil {
			return nil, err
		}
		room.Code = code
		err = s.Store.InsertOne(ctx, store.Rooms, room)
		if err == nil {
			return &room, nil
		}
		if !store.IsUniqueViolation(err) || attempt >= codeAttempts {
			return nil, err
		}
	}
}

// Join appends a new participant to the room matching the code. The append
// is a single atomic array update; two concurrent joins both land, in
// undefined order. The room is re-read afterwards so the caller sees the
// full participant list.
func (s *RoomService) Join(ctx context.Context, in models.RoomJoin) (*models.Room, error) {
	if strings.TrimSpace(in.UserName) == "" {
		return nil, invalid("İsim boş olamaz")
	}
	if strings.TrimSpace(in.RoomCode) == "" {
		return nil, invalid("Oda kodu boş olamaz")
	}

	code := strings.ToUpper(in.RoomCode)
	var room models.Room
	found, err := s.Store.FindOne(ctx, store.Rooms, store.Filter{"code": code}, &room)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, invalid("Oda bulunamadı")
	}

	participant := models.RoomParticipant{
		ID:         uuid.NewString(),
		Name:       in.UserName,
		StudyField: in.UserStudyField,
	}
	if _, err := s.Store.AppendToArray(ctx, store.Rooms, store.Filter{"code": code}, "participants", participant); err != nil {
		return nil, err
	}

	var updated models.Room
	found, err = s.Store.FindOne(ctx, store.Rooms, store.Filter{"code": code}, &updated)
	if err != nil || !found {
		return nil, err
	}
	return &updated, nil
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	found, err := s.Store.FindOne(ctx, store.Rooms, store.Filter{"id": id}, &room)
	if err != nil || !found {
		return nil, err
	}
	return &room, nil
}

// GetByCode looks a room up by its join code, case-insensitively.
func (s *RoomService) GetByCode(ctx context.Context, code string) (*models.Room, error) {
	var room models.Room
	found, err := s.Store.FindOne(ctx, store.Rooms, store.Filter{"code": strings.ToUpper(code)}, &room)
	if err != nil || !found {
		return nil, err
	}
	return &room, nil
}

// UpdateTimer replaces the room's embedded timer state wholesale. The state
// is client-driven, so no consistency checks are applied to it.
func (s *RoomService) UpdateTimer(ctx context.Context, roomID string, state models.TimerState) error {
	_, err := s.Store.UpdateFields(ctx, store.Rooms, store.Filter{"id": roomID}, map[string]any{"timer_state": state})
	return err
}
