package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Postgres implements Gateway over one JSONB column per collection table:
// (id BIGSERIAL, doc JSONB). Filters compile to doc->>key predicates;
// field-set and array-append updates are single UPDATE statements, so each
// stays atomic per document.
type Postgres struct {
	DB *gorm.DB
}

var _ Gateway = (*Postgres)(nil)

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{DB: db}
}

var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func checkIdent(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("store: invalid identifier %q", name)
	}
	return nil
}

// filterSQL compiles a filter to a WHERE fragment plus bind args. Values are
// compared against the text form of each field, which matches how every
// caller filters (string ids, codes and uids).
func filterSQL(filter Filter) (string, []any) {
	if len(filter) == 0 {
		return "TRUE", nil
	}
	conds := make([]string, 0, len(filter))
	args := make([]any, 0, 2*len(filter))
	for k, v := range filter {
		conds = append(conds, "doc->>? = ?")
		args = append(args, k, fmt.Sprint(v))
	}
	return strings.Join(conds, " AND "), args
}

func (p *Postgres) InsertOne(ctx context.Context, collection string, doc any) error {
	if err := checkIdent(collection); err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return p.DB.WithContext(ctx).
		Exec(fmt.Sprintf("INSERT INTO %s (doc) VALUES (?::jsonb)", collection), datatypes.JSON(b)).Error
}

func (p *Postgres) FindOne(ctx context.Context, collection string, filter Filter, out any) (bool, error) {
	if err := checkIdent(collection); err != nil {
		return false, err
	}
	cond, args := filterSQL(filter)
	var rows []datatypes.JSON
	err := p.DB.WithContext(ctx).Table(collection).
		Where(cond, args...).
		Limit(1).
		Pluck("doc", &rows).Error
	if err != nil || len(rows) == 0 {
		return false, err
	}
	return true, json.Unmarshal(rows[0], out)
}

func (p *Postgres) FindMany(ctx context.Context, collection string, filter Filter, sort Sort, limit int, out any) error {
	if err := checkIdent(collection); err != nil {
		return err
	}
	cond, args := filterSQL(filter)
	q := p.DB.WithContext(ctx).Table(collection).Where(cond, args...)
	if sort.Field != "" {
		if err := checkIdent(sort.Field); err != nil {
			return err
		}
		dir := "ASC"
		if sort.Desc {
			dir = "DESC"
		}
		q = q.Order(fmt.Sprintf("doc->>'%s' %s", sort.Field, dir))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []datatypes.JSON
	if err := q.Pluck("doc", &rows).Error; err != nil {
		return err
	}
	docs := make([]json.RawMessage, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, json.RawMessage(r))
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (p *Postgres) UpdateFields(ctx context.Context, collection string, filter Filter, fields map[string]any) (int64, error) {
	if err := checkIdent(collection); err != nil {
		return 0, err
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return 0, err
	}
	cond, args := filterSQL(filter)
	sql := fmt.Sprintf(
		"UPDATE %s SET doc = doc || ?::jsonb WHERE ctid IN (SELECT ctid FROM %s WHERE %s LIMIT 1)",
		collection, collection, cond,
	)
	tx := p.DB.WithContext(ctx).Exec(sql, append([]any{datatypes.JSON(b)}, args...)...)
	return tx.RowsAffected, tx.Error
}

func (p *Postgres) AppendToArray(ctx context.Context, collection string, filter Filter, field string, elem any) (int64, error) {
	if err := checkIdent(collection); err != nil {
		return 0, err
	}
	if err := checkIdent(field); err != nil {
		return 0, err
	}
	b, err := json.Marshal(elem)
	if err != nil {
		return 0, err
	}
	cond, args := filterSQL(filter)
	sql := fmt.Sprintf(
		"UPDATE %s SET doc = jsonb_set(doc, '{%s}', COALESCE(doc->'%s', '[]'::jsonb) || ?::jsonb) WHERE ctid IN (SELECT ctid FROM %s WHERE %s LIMIT 1)",
		collection, field, field, collection, cond,
	)
	tx := p.DB.WithContext(ctx).Exec(sql, append([]any{datatypes.JSON(b)}, args...)...)
	return tx.RowsAffected, tx.Error
}

func (p *Postgres) DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error) {
	if err := checkIdent(collection); err != nil {
		return 0, err
	}
	cond, args := filterSQL(filter)
	sql := fmt.Sprintf(
		"DELETE FROM %s WHERE ctid IN (SELECT ctid FROM %s WHERE %s LIMIT 1)",
		collection, collection, cond,
	)
	tx := p.DB.WithContext(ctx).Exec(sql, args...)
	return tx.RowsAffected, tx.Error
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key error,
// e.g. a room code colliding with the unique code index.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
