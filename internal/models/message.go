package models

import (
	"time"
)

// Message is a chat line in a room. Sender identity is denormalized onto the
// message so history renders without a profile lookup.
type Message struct {
	ID             string    `json:"id"`
	RoomID         string    `json:"room_id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserStudyField *string   `json:"user_study_field"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

type MessageCreate struct {
	RoomID         string  `json:"room_id"`
	UserID         string  `json:"user_id"`
	UserName       string  `json:"user_name"`
	UserStudyField *string `json:"user_study_field"`
	Content        string  `json:"content"`
}
