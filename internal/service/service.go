// Package service implements the to-do resource operations. Each operation
// runs inside its own transaction scope against the injected store; nothing
// spans requests and no state lives outside the database.
package service

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"

	"github.com/eleven-am/tick/internal/logger"
	"github.com/eleven-am/tick/internal/model"
	"github.com/eleven-am/tick/internal/store"
)

// TodoService executes the four resource operations against a store.
type TodoService struct {
	store *store.Store
	log   *log.Logger
}

// New creates a TodoService bound to the given store.
func New(st *store.Store) *TodoService {
	return &TodoService{
		store: st,
		log:   logger.Service(),
	}
}

// Create inserts a new item and returns it with the storage-assigned id. The
// returned item is re-read from the committed row, so the caller never sees a
// placeholder identifier.
func (s *TodoService) Create(ctx context.Context, in model.CreateTodoInput) (*model.TodoItem, error) {
	item := model.NewTodoItem(in)

	var created *model.TodoItem
	err := s.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.store.Insert(ctx, tx, &item); err != nil {
			return err
		}

		refreshed, err := s.store.Get(ctx, tx, item.ID)
		if err != nil {
			return err
		}
		created = refreshed
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("created todo item", "id", created.ID)
	return created, nil
}

// List returns all persisted items in storage-native order.
func (s *TodoService) List(ctx context.Context) ([]model.TodoItem, error) {
	return s.store.List(ctx)
}

// Update applies the explicitly supplied fields of in to the item identified
// by id. Omitted fields keep their stored value. Returns ErrNotFound when the
// id does not exist; in that case nothing is mutated.
func (s *TodoService) Update(ctx context.Context, id int64, in model.UpdateTodoInput) (*model.TodoItem, error) {
	var updated *model.TodoItem
	err := s.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		item, err := s.store.Get(ctx, tx, id)
		if err != nil {
			return err
		}

		// An empty update still requires the item to exist, but there is
		// nothing to write.
		if in.Empty() {
			updated = item
			return nil
		}

		in.Apply(item)

		if err := s.store.Update(ctx, tx, item); err != nil {
			return err
		}

		refreshed, err := s.store.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = refreshed
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("updated todo item", "id", updated.ID)
	return updated, nil
}

// Delete removes the item identified by id. Returns ErrNotFound when the id
// does not exist.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.store.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Debug("deleted todo item", "id", id)
	return nil
}
