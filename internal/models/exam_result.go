package models

import (
	"time"
)

// ExamResult is one practice-exam net score, owned by a Firebase user (not a
// profile). Date is the exam day as a plain YYYY-MM-DD string.
type ExamResult struct {
	ID          string    `json:"id"`
	FirebaseUID string    `json:"firebase_uid"`
	ExamType    string    `json:"exam_type"`
	Date        string    `json:"date"`
	NetScore    float64   `json:"net_score"`
	ExamName    *string   `json:"exam_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExamResultCreate carries the field rules checked by the exam service.
// NetScore is a pointer so an absent score can be told apart from zero.
type ExamResultCreate struct {
	ExamType string   `json:"exam_type" validate:"required,oneof=TYT AYT"`
	Date     string   `json:"date" validate:"required"`
	NetScore *float64 `json:"net_score" validate:"required,gte=0"`
	ExamName *string  `json:"exam_name"`
}
