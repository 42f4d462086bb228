package models

import (
	"time"
)

// Profile is a user's study identity. FirebaseUID links the profile to an
// external auth account; StudyField is a free-form label ("Sayısal", "EA",
// "Sözel" by convention).
type Profile struct {
	ID          string    `json:"id"`
	FirebaseUID *string   `json:"firebase_uid"`
	Name        string    `json:"name"`
	StudyField  *string   `json:"study_field"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProfileCreate struct {
	FirebaseUID *string `json:"firebase_uid"`
	Name        string  `json:"name"`
	StudyField  *string `json:"study_field"`
}
