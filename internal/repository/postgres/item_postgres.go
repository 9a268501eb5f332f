package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"itemapi/internal/model"
	"itemapi/internal/repository"
)

// ItemPostgres is a GORM-backed implementation of repository.ItemRepository.
// It contains no business logic.
type ItemPostgres struct {
	db *gorm.DB
}

// NewItemPostgres creates a new ItemPostgres repository.
func NewItemPostgres(db *gorm.DB) *ItemPostgres {
	return &ItemPostgres{db: db}
}

var _ repository.ItemRepository = (*ItemPostgres)(nil)

// Create inserts a new item row and returns the stored record.
func (r *ItemPostgres) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	out := model.Item{
		Name:        item.Name,
		Description: item.Description,
	}
	if err := r.db.WithContext(ctx).Create(&out).Error; err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return &out, nil
}

// List returns every item ordered by id.
func (r *ItemPostgres) List(ctx context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// FindByID fetches a single item by primary key.
func (r *ItemPostgres) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Take(&it, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find item %d: %w", id, err)
	}
	return &it, nil
}

// Update overwrites name and description. A nil description is written as NULL.
func (r *ItemPostgres) Update(ctx context.Context, item *model.Item) (*model.Item, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Item{ID: item.ID}).
		Select("name", "description").
		Updates(model.Item{Name: item.Name, Description: item.Description})
	if res.Error != nil {
		return nil, fmt.Errorf("update item %d: %w", item.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}
	out := *item
	return &out, nil
}

// Delete removes an item by ID.
func (r *ItemPostgres) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
