// Package model defines the to-do item entity and the input shapes accepted
// by the API.
package model

// TodoItem is the persisted to-do entity. ID is assigned by the storage
// engine on first insert and never changes afterwards.
type TodoItem struct {
	ID        int64  `db:"id" json:"id"`
	Content   string `db:"content" json:"content"`
	Completed bool   `db:"completed" json:"completed"`
}

// CreateTodoInput is the payload accepted when creating an item. Callers
// supply content only; id and completion state are not settable at creation.
type CreateTodoInput struct {
	Content string `json:"content"`
}

// UpdateTodoInput is the payload accepted when updating an item. Both fields
// are optional and tracked independently: a nil pointer means the caller did
// not send the field and the stored value must be left untouched. An explicit
// zero value (empty string, false) is a real update.
type UpdateTodoInput struct {
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}

// NewTodoItem builds an unpersisted item from a creation payload. The ID is
// left zero for the storage engine to assign and Completed starts false.
func NewTodoItem(in CreateTodoInput) TodoItem {
	return TodoItem{
		Content:   in.Content,
		Completed: false,
	}
}

// Apply copies each explicitly supplied field onto the item. Fields the
// caller omitted are not touched.
func (in UpdateTodoInput) Apply(item *TodoItem) {
	if in.Content != nil {
		item.Content = *in.Content
	}
	if in.Completed != nil {
		item.Completed = *in.Completed
	}
}

// Empty reports whether the input carries no fields at all. An empty update
// is legal and leaves the item as it was.
func (in UpdateTodoInput) Empty() bool {
	return in.Content == nil && in.Completed == nil
}
