package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-process Gateway used by the test suites. It keeps every
// document as raw JSON so values round-trip exactly as they would through
// the JSONB store.
type Memory struct {
	mu   sync.Mutex
	docs map[string][]json.RawMessage
}

var _ Gateway = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{docs: map[string][]json.RawMessage{}}
}

// Count returns the number of documents in a collection.
func (m *Memory) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs[collection])
}

func matches(raw json.RawMessage, filter Filter) bool {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func fieldText(raw json.RawMessage, field string) string {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	return fmt.Sprint(doc[field])
}

func (m *Memory) InsertOne(_ context.Context, collection string, doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[collection] = append(m.docs[collection], b)
	return nil
}

func (m *Memory) FindOne(_ context.Context, collection string, filter Filter, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, raw := range m.docs[collection] {
		if matches(raw, filter) {
			return true, json.Unmarshal(raw, out)
		}
	}
	return false, nil
}

func (m *Memory) FindMany(_ context.Context, collection string, filter Filter, s Sort, limit int, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	hits := make([]json.RawMessage, 0)
	for _, raw := range m.docs[collection] {
		if matches(raw, filter) {
			hits = append(hits, raw)
		}
	}
	if s.Field != "" {
		sort.SliceStable(hits, func(i, j int) bool {
			a, b := fieldText(hits[i], s.Field), fieldText(hits[j], s.Field)
			if s.Desc {
				return a > b
			}
			return a < b
		})
	}
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	b, err := json.Marshal(hits)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (m *Memory) UpdateFields(_ context.Context, collection string, filter Filter, fields map[string]any) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, raw := range m.docs[collection] {
		if !matches(raw, filter) {
			continue
		}
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(raw, &doc); err != nil {
			return 0, err
		}
		for k, v := range fields {
			b, err := json.Marshal(v)
			if err != nil {
				return 0, err
			}
			doc[k] = b
		}
		merged, err := json.Marshal(doc)
		if err != nil {
			return 0, err
		}
		m.docs[collection][i] = merged
		return 1, nil
	}
	return 0, nil
}

func (m *Memory) AppendToArray(_ context.Context, collection string, filter Filter, field string, elem any) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, raw := range m.docs[collection] {
		if !matches(raw, filter) {
			continue
		}
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(raw, &doc); err != nil {
			return 0, err
		}
		arr := []json.RawMessage{}
		if cur, ok := doc[field]; ok {
			if err := json.Unmarshal(cur, &arr); err != nil {
				return 0, err
			}
		}
		b, err := json.Marshal(elem)
		if err != nil {
			return 0, err
		}
		arr = append(arr, b)
		merged, err := json.Marshal(arr)
		if err != nil {
			return 0, err
		}
		doc[field] = merged
		if m.docs[collection][i], err = json.Marshal(doc); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return 0, nil
}

func (m *Memory) DeleteOne(_ context.Context, collection string, filter Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, raw := range m.docs[collection] {
		if matches(raw, filter) {
			m.docs[collection] = append(m.docs[collection][:i], m.docs[collection][i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
