package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/store"
)

// StatusService backs the legacy status-check endpoints kept for early
// clients.
type StatusService struct {
	Store store.Gateway
}

func (s *StatusService) Create(ctx context.Context, in models.StatusCheckCreate) (*models.StatusCheck, error) {
	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: in.ClientName,
		Timestamp:  now(),
	}
	if err := s.Store.InsertOne(ctx, store.StatusChecks, check); err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	checks := []models.StatusCheck{}
	err := s.Store.FindMany(ctx, store.StatusChecks, store.Filter{}, store.Sort{}, listLimit, &checks)
	return checks, err
}
