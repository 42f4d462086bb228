package services

import (
	"time"
)

// listLimit caps every find-many, matching the historical behavior clients
// were built against.
const listLimit = 1000

// now returns the server-assigned creation timestamp: UTC, whole seconds, so
// a document read back from the store compares equal to the value returned
// at creation.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
