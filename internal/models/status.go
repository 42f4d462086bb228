package models

import (
	"time"
)

// StatusCheck is a legacy ping record kept for compatibility with early
// clients that report liveness through POST /api/status.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name"`
}
