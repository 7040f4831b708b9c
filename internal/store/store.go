// Package store implements the relational persistence layer for to-do items.
// It speaks to a single table through sqlx and builds every statement with
// squirrel. The sqlite3 driver backed by one database file is the default;
// postgres is supported through the same interface.
package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	// Database drivers registered for sqlx.Connect.
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/eleven-am/tick/internal/model"
)

const todosTable = "todos"

// Supported driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Executor is the subset of sqlx a store method needs to run a statement.
// Both *sqlx.DB and *sqlx.Tx satisfy it, so every point operation can execute
// inside or outside a transaction scope.
type Executor interface {
	sqlx.ExtContext
}

// Store provides table-level operations on the todos table. It holds the
// process-wide database handle; construct one at startup and inject it into
// the service.
type Store struct {
	db      *sqlx.DB
	driver  string
	builder squirrel.StatementBuilderType
}

// Open connects to the database identified by driver and dsn and returns a
// Store bound to it.
func Open(driver, dsn string) (*Store, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return New(db, driver), nil
}

// New wraps an existing database handle. The driver name decides the
// placeholder format and the flavor of generated-key retrieval.
func New(db *sqlx.DB, driver string) *Store {
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if driver == DriverPostgres {
		placeholder = squirrel.Dollar
	}
	return &Store{
		db:      db,
		driver:  driver,
		builder: squirrel.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

// DB returns the underlying database handle.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Init creates the todos table if it does not exist. It is idempotent and
// runs once at process startup.
func (s *Store) Init(ctx context.Context) error {
	ddl := `CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT 0
	)`
	if s.driver == DriverPostgres {
		ddl = `CREATE TABLE IF NOT EXISTS todos (
		id BIGSERIAL PRIMARY KEY,
		content TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE
	)`
	}

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return parseDriverError(err, "Init", todosTable)
	}
	return nil
}

// Insert persists a new item and assigns its storage-generated id. The item
// must not have an id yet.
func (s *Store) Insert(ctx context.Context, ex Executor, item *model.TodoItem) error {
	builder := s.builder.
		Insert(todosTable).
		Columns("content", "completed").
		Values(item.Content, item.Completed)

	if s.driver == DriverPostgres {
		query, args, err := builder.Suffix("RETURNING id").ToSql()
		if err != nil {
			return &Error{Op: "Insert", Table: todosTable, Err: err}
		}
		if err := sqlx.GetContext(ctx, ex, &item.ID, query, args...); err != nil {
			return parseDriverError(err, "Insert", todosTable)
		}
		return nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return &Error{Op: "Insert", Table: todosTable, Err: err}
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return parseDriverError(err, "Insert", todosTable)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return parseDriverError(err, "Insert", todosTable)
	}
	item.ID = id
	return nil
}

// Get performs a point lookup by id. Returns ErrNotFound (wrapped) when no
// row matches.
func (s *Store) Get(ctx context.Context, ex Executor, id int64) (*model.TodoItem, error) {
	query, args, err := s.builder.
		Select("id", "content", "completed").
		From(todosTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, &Error{Op: "Get", Table: todosTable, Err: err}
	}

	var item model.TodoItem
	if err := sqlx.GetContext(ctx, ex, &item, query, args...); err != nil {
		return nil, parseDriverError(err, "Get", todosTable)
	}
	return &item, nil
}

// List returns every persisted item. Order is whatever the storage engine
// yields for a full scan; no ORDER BY is applied.
func (s *Store) List(ctx context.Context) ([]model.TodoItem, error) {
	query, args, err := s.builder.
		Select("id", "content", "completed").
		From(todosTable).
		ToSql()
	if err != nil {
		return nil, &Error{Op: "List", Table: todosTable, Err: err}
	}

	items := make([]model.TodoItem, 0)
	if err := sqlx.SelectContext(ctx, s.db, &items, query, args...); err != nil {
		return nil, parseDriverError(err, "List", todosTable)
	}
	return items, nil
}

// Update overwrites the content and completed columns of the row matching the
// item's id. Returns ErrNotFound (wrapped) when the row does not exist.
func (s *Store) Update(ctx context.Context, ex Executor, item *model.TodoItem) error {
	query, args, err := s.builder.
		Update(todosTable).
		Set("content", item.Content).
		Set("completed", item.Completed).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return &Error{Op: "Update", Table: todosTable, Err: err}
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return parseDriverError(err, "Update", todosTable)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return parseDriverError(err, "Update", todosTable)
	}
	if affected == 0 {
		return &Error{Op: "Update", Table: todosTable, Err: ErrNotFound}
	}
	return nil
}

// Delete removes the row matching id. Returns ErrNotFound (wrapped) when the
// row does not exist.
func (s *Store) Delete(ctx context.Context, ex Executor, id int64) error {
	query, args, err := s.builder.
		Delete(todosTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return &Error{Op: "Delete", Table: todosTable, Err: err}
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return parseDriverError(err, "Delete", todosTable)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return parseDriverError(err, "Delete", todosTable)
	}
	if affected == 0 {
		return &Error{Op: "Delete", Table: todosTable, Err: ErrNotFound}
	}
	return nil
}
