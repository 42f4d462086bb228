package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/planner"
	"github.com/izlekapp/izlek_backend_v1/internal/store"
)

type ProgramService struct {
	Store store.Gateway
}

// Create stores a new program seeded with the generated starter task list.
func (s *ProgramService) Create(ctx context.Context, in models.ProgramCreate) (*models.Program, error) {
	program := models.Program{
		ID:         uuid.NewString(),
		ProfileID:  in.ProfileID,
		ExamGoal:   in.ExamGoal,
		DailyHours: in.DailyHours,
		StudyDays:  in.StudyDays,
		Tasks:      planner.GenerateStarterTasks(in.ExamGoal, in.DailyHours, in.StudyDays),
		CreatedAt:  now(),
	}
	if err := s.Store.InsertOne(ctx, store.Programs, program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *ProgramService) ListByProfile(ctx context.Context, profileID string) ([]models.Program, error) {
	programs := []models.Program{}
	err := s.Store.FindMany(ctx, store.Programs, store.Filter{"profile_id": profileID}, store.Sort{}, listLimit, &programs)
	return programs, err
}

// Update applies a partial patch: only non-nil fields are written, and a
// non-nil task list replaces the stored one wholesale. The updated program
// is re-read and returned; nil if the id is unknown.
func (s *ProgramService) Update(ctx context.Context, id string, in models.ProgramUpdate) (*models.Program, error) {
	fields := map[string]any{}
	if in.ExamGoal != nil {
		fields["exam_goal"] = *in.ExamGoal
	}
	if in.DailyHours != nil {
		fields["daily_hours"] = *in.DailyHours
	}
	if in.StudyDays != nil {
		fields["study_days"] = *in.StudyDays
	}
	if in.Tasks != nil {
		fields["tasks"] = *in.Tasks
	}
	if len(fields) > 0 {
		if _, err := s.Store.UpdateFields(ctx, store.Programs, store.Filter{"id": id}, fields); err != nil {
			return nil, err
		}
	}

	var program models.Program
	found, err := s.Store.FindOne(ctx, store.Programs, store.Filter{"id": id}, &program)
	if err != nil || !found {
		return nil, err
	}
	return &program, nil
}

func (s *ProgramService) Delete(ctx context.Context, id string) (bool, error) {
	n, err := s.Store.DeleteOne(ctx, store.Programs, store.Filter{"id": id})
	return n > 0, err
}
