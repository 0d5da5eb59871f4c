package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

const tableName = "design_kv"

const createTableSQL = `CREATE TABLE IF NOT EXISTS design_kv (
	workspace_id VARCHAR(128) NOT NULL,
	item_key     VARCHAR(128) NOT NULL,
	item_value   TEXT         NOT NULL,
	updated_at   TIMESTAMP    NOT NULL,
	PRIMARY KEY (workspace_id, item_key)
)`

// Repository key-value хранилище состояния дизайнов поверх SQL (sqlite или postgres)
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
	now     func() time.Time
}

// NewRepository создает новый экземпляр репозитория.
// builder определяет диалект плейсхолдеров (см. pkg/sqlbuilder).
func NewRepository(db DBExecutor, builder squirrel.StatementBuilderType) *Repository {
	return &Repository{db: db, builder: builder, now: time.Now}
}

// EnsureSchema создает таблицу, если ее еще нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Set сохраняет значение по ключу, перезаписывая предыдущее
func (r *Repository) Set(ctx context.Context, workspaceID, key string, value []byte) error {
	query, args, err := r.builder.Insert(tableName).
		Columns("workspace_id", "item_key", "item_value", "updated_at").
		Values(workspaceID, key, string(value), r.now().UTC()).
		Suffix("ON CONFLICT (workspace_id, item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Get возвращает значение по ключу или ErrKeyNotFound
func (r *Repository) Get(ctx context.Context, workspaceID, key string) ([]byte, error) {
	query, args, err := r.builder.Select("item_value").
		From(tableName).
		Where(squirrel.Eq{"workspace_id": workspaceID, "item_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return []byte(value), nil
}
