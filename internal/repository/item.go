package repository

import (
	"context"
	"errors"

	"itemapi/internal/model"
)

// ErrNotFound is returned when no row matches the requested id.
// It reports absence, not a failure of the store.
var ErrNotFound = errors.New("item not found")

// ItemRepository defines data access for items.
// No business logic here — strictly persistence operations. Every mutating
// call commits on its own.
type ItemRepository interface {
	// Create inserts a new item. The store assigns the ID.
	// Returns the stored item including the generated ID.
	Create(ctx context.Context, item *model.Item) (*model.Item, error)

	// List returns all items in insertion order.
	List(ctx context.Context) ([]model.Item, error)

	// FindByID returns an item by its primary key, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Item, error)

	// Update overwrites name and description of the item with item.ID.
	Update(ctx context.Context, item *model.Item) (*model.Item, error)

	// Delete removes an item by ID. Returns ErrNotFound if nothing was deleted.
	Delete(ctx context.Context, id int64) error
}
