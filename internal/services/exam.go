package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/store"
)

type ExamService struct {
	Store    store.Gateway
	validate *validator.Validate
}

func NewExamService(st store.Gateway) *ExamService {
	return &ExamService{Store: st, validate: validator.New()}
}

// Create stores an exam result for the given user after checking the field
// rules on ExamResultCreate. The owning uid comes from the identity layer,
// never from the body.
func (s *ExamService) Create(ctx context.Context, firebaseUID string, in models.ExamResultCreate) (*models.ExamResult, error) {
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "ExamType":
				return nil, invalid("Geçersiz sınav türü (TYT/AYT olmalı)")
			case "Date":
				return nil, invalid("Tarih boş olamaz")
			case "NetScore":
				return nil, invalid("Net skoru geçersiz")
			}
		}
		return nil, err
	}

	result := models.ExamResult{
		ID:          uuid.NewString(),
		FirebaseUID: firebaseUID,
		ExamType:    in.ExamType,
		Date:        in.Date,
		NetScore:    *in.NetScore,
		ExamName:    in.ExamName,
		CreatedAt:   now(),
	}
	if err := s.Store.InsertOne(ctx, store.ExamResults, result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListByUser returns the user's results newest exam first. Dates are
// YYYY-MM-DD strings, so the textual sort is chronological.
func (s *ExamService) ListByUser(ctx context.Context, firebaseUID string) ([]models.ExamResult, error) {
	results := []models.ExamResult{}
	err := s.Store.FindMany(ctx, store.ExamResults, store.Filter{"firebase_uid": firebaseUID}, store.Sort{Field: "date", Desc: true}, listLimit, &results)
	return results, err
}
