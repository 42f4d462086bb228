package store

import (
	"context"
	"testing"
)

type note struct {
	ID    string   `json:"id"`
	Owner string   `json:"owner"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags"`
}

func TestMemoryInsertAndFindOne(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.InsertOne(ctx, "notes", note{ID: "n1", Owner: "ada", Text: "hi"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var got note
	found, err := m.FindOne(ctx, "notes", Filter{"id": "n1"}, &got)
	if err != nil || !found {
		t.Fatalf("find: found=%v err=%v", found, err)
	}
	if got.Owner != "ada" || got.Text != "hi" {
		t.Errorf("unexpected document: %+v", got)
	}

	found, err = m.FindOne(ctx, "notes", Filter{"id": "missing"}, &got)
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if found {
		t.Error("expected absence for unknown id")
	}
}

func TestMemoryFindManySortedLimited(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, n := range []note{
		{ID: "n2", Owner: "ada", Text: "b"},
		{ID: "n3", Owner: "eva", Text: "c"},
		{ID: "n1", Owner: "ada", Text: "a"},
	} {
		if err := m.InsertOne(ctx, "notes", n); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	var got []note
	if err := m.FindMany(ctx, "notes", Filter{"owner": "ada"}, Sort{Field: "text"}, 0, &got); err != nil {
		t.Fatalf("find many: %v", err)
	}
	if len(got) != 2 || got[0].Text != "a" || got[1].Text != "b" {
		t.Fatalf("unexpected ascending result: %+v", got)
	}

	if err := m.FindMany(ctx, "notes", Filter{}, Sort{Field: "text", Desc: true}, 2, &got); err != nil {
		t.Fatalf("find many desc: %v", err)
	}
	if len(got) != 2 || got[0].Text != "c" || got[1].Text != "b" {
		t.Fatalf("unexpected descending limited result: %+v", got)
	}
}

func TestMemoryUpdateFieldsMergesOneDocument(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.InsertOne(ctx, "notes", note{ID: "n1", Owner: "ada", Text: "old"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := m.UpdateFields(ctx, "notes", Filter{"id": "n1"}, map[string]any{"text": "new"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Fatalf("updated %d documents, want 1", n)
	}

	var got note
	if _, err := m.FindOne(ctx, "notes", Filter{"id": "n1"}, &got); err != nil {
		t.Fatalf("reread: %v", err)
	}
	if got.Text != "new" || got.Owner != "ada" {
		t.Errorf("merge lost fields: %+v", got)
	}

	n, err = m.UpdateFields(ctx, "notes", Filter{"id": "ghost"}, map[string]any{"text": "x"})
	if err != nil || n != 0 {
		t.Errorf("update of missing doc: n=%d err=%v", n, err)
	}
}

func TestMemoryAppendToArray(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.InsertOne(ctx, "notes", note{ID: "n1", Owner: "ada"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	for _, tag := range []string{"math", "physics"} {
		n, err := m.AppendToArray(ctx, "notes", Filter{"id": "n1"}, "tags", tag)
		if err != nil || n != 1 {
			t.Fatalf("append %q: n=%d err=%v", tag, n, err)
		}
	}

	var got note
	if _, err := m.FindOne(ctx, "notes", Filter{"id": "n1"}, &got); err != nil {
		t.Fatalf("reread: %v", err)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "math" || got.Tags[1] != "physics" {
		t.Errorf("unexpected tags: %v", got.Tags)
	}
}

func TestMemoryDeleteOne(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.InsertOne(ctx, "notes", note{ID: "n1"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := m.DeleteOne(ctx, "notes", Filter{"id": "n1"})
	if err != nil || n != 1 {
		t.Fatalf("delete: n=%d err=%v", n, err)
	}
	n, err = m.DeleteOne(ctx, "notes", Filter{"id": "n1"})
	if err != nil || n != 0 {
		t.Fatalf("second delete: n=%d err=%v", n, err)
	}
	if m.Count("notes") != 0 {
		t.Errorf("collection not empty after delete")
	}
}
