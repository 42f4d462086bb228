package store

import (
	"context"
)

// Collection names. One table per collection, each row a single JSON
// document.
const (
	Profiles     = "profiles"
	Programs     = "programs"
	Rooms        = "rooms"
	Messages     = "messages"
	ExamResults  = "exam_results"
	StatusChecks = "status_checks"
)

// Collections lists every collection the backend persists to, in migration
// order.
func Collections() []string {
	return []string{Profiles, Programs, Rooms, Messages, ExamResults, StatusChecks}
}

// Filter selects documents by exact equality on top-level fields.
type Filter map[string]any

// Sort orders a FindMany result by one document field. The zero value means
// no ordering.
type Sort struct {
	Field string
	Desc  bool
}

// Gateway is the document-store abstraction every service persists through.
// Each operation is atomic at single-document granularity; there are no
// transactions spanning documents. The gateway does no validation — callers
// shape documents themselves, including keeping timestamps serializable.
type Gateway interface {
	// InsertOne stores doc as a new document in collection.
	InsertOne(ctx context.Context, collection string, doc any) error

	// FindOne decodes the first document matching filter into out and
	// reports whether one was found. Absence is not an error.
	FindOne(ctx context.Context, collection string, filter Filter, out any) (bool, error)

	// FindMany decodes every document matching filter into out (a pointer
	// to a slice), ordered by sort and capped at limit (0 means no cap).
	FindMany(ctx context.Context, collection string, filter Filter, sort Sort, limit int, out any) error

	// UpdateFields merges fields into the first document matching filter
	// and returns the number of documents touched.
	UpdateFields(ctx context.Context, collection string, filter Filter, fields map[string]any) (int64, error)

	// AppendToArray appends elem to the named array field of the first
	// document matching filter, creating the array if absent.
	AppendToArray(ctx context.Context, collection string, filter Filter, field string, elem any) (int64, error)

	// DeleteOne removes the first document matching filter and returns the
	// number of documents removed.
	DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error)
}
