package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/store"
)

type MessageService struct {
	Store store.Gateway
}

// Create stores a chat message. The room is not checked for existence;
// messages for unknown rooms are simply never listed.
func (s *MessageService) Create(ctx context.Context, in models.MessageCreate) (*models.Message, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, invalid("Mesaj boş olamaz")
	}
	message := models.Message{
		ID:             uuid.NewString(),
		RoomID:         in.RoomID,
		UserID:         in.UserID,
		UserName:       in.UserName,
		UserStudyField: in.UserStudyField,
		Content:        in.Content,
		Timestamp:      now(),
	}
	if err := s.Store.InsertOne(ctx, store.Messages, message); err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByRoom returns a room's messages oldest first.
func (s *MessageService) ListByRoom(ctx context.Context, roomID string) ([]models.Message, error) {
	messages := []models.Message{}
	err := s.Store.FindMany(ctx, store.Messages, store.Filter{"room_id": roomID}, store.Sort{Field: "timestamp"}, listLimit, &messages)
	return messages, err
}
