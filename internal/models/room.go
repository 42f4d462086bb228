package models

import (
	"time"
)

// RoomParticipant is immutable once appended to a room.
type RoomParticipant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	StudyField *string `json:"study_field"`
}

// TimerState is the shared countdown of a room. It is client-driven: the
// backend stores whatever the caller sends and echoes it back on reads.
type TimerState struct {
	IsRunning        bool    `json:"is_running"`
	DurationMinutes  int     `json:"duration_minutes"`
	RemainingSeconds int     `json:"remaining_seconds"`
	StartedAt        *string `json:"started_at"`
}

// DefaultTimerState is the timer a freshly created room starts with.
func DefaultTimerState() TimerState {
	return TimerState{DurationMinutes: 25}
}

// Room is a shared study session. The owner is always participants[0] and
// Code is the 6-character uppercase join code.
type Room struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Code         string            `json:"code"`
	OwnerID      string            `json:"owner_id"`
	Participants []RoomParticipant `json:"participants"`
	TimerState   TimerState        `json:"timer_state"`
	CreatedAt    time.Time         `json:"created_at"`
}

type RoomCreate struct {
	Name            string  `json:"name"`
	OwnerName       string  `json:"owner_name"`
	OwnerStudyField *string `json:"owner_study_field"`
}

type RoomJoin struct {
	RoomCode       string  `json:"room_code"`
	UserName       string  `json:"user_name"`
	UserStudyField *string `json:"user_study_field"`
}
