package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/store"
)

type ProfileService struct {
	Store store.Gateway
}

func (s *ProfileService) Create(ctx context.Context, in models.ProfileCreate) (*models.Profile, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("İsim boş olamaz")
	}
	profile := models.Profile{
		ID:          uuid.NewString(),
		FirebaseUID: in.FirebaseUID,
		Name:        in.Name,
		StudyField:  in.StudyField,
		CreatedAt:   now(),
	}
	if err := s.Store.InsertOne(ctx, store.Profiles, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByID returns nil without error when no profile exists; absence is not a
// failure in this API.
func (s *ProfileService) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	found, err := s.Store.FindOne(ctx, store.Profiles, store.Filter{"id": id}, &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) GetByFirebaseUID(ctx context.Context, firebaseUID string) (*models.Profile, error) {
	var profile models.Profile
	found, err := s.Store.FindOne(ctx, store.Profiles, store.Filter{"firebase_uid": firebaseUID}, &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}
