package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"itemapi/internal/model"
	"itemapi/internal/repository"
)

var (
	ErrInvalidID    = errors.New("id must be a non-negative integer")
	ErrNameRequired = errors.New("name is required")
	ErrNotFound     = errors.New("item not found")
)

var validate = validator.New()

// CreateItemInput carries the fields accepted when creating an item.
// Name must be present; any string, including an empty one, is accepted.
type CreateItemInput struct {
	Name        *string `validate:"required"`
	Description *string
}

// UpdateItemInput carries the fields that replace an item's state.
type UpdateItemInput struct {
	Name        *string `validate:"required"`
	Description *string
}

func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return ErrNameRequired
	}
	return nil
}

// ItemService defines the use cases for handling items.
type ItemService interface {
	// Create stores a new item and returns it with its generated ID.
	Create(ctx context.Context, in CreateItemInput) (*model.Item, error)

	// List returns all items in insertion order.
	List(ctx context.Context) ([]model.Item, error)

	// Get returns a single item by its ID.
	Get(ctx context.Context, id int64) (*model.Item, error)

	// Update overwrites name and description of an existing item.
	Update(ctx context.Context, id int64, in UpdateItemInput) (*model.Item, error)

	// Delete removes an item and returns its state before deletion.
	Delete(ctx context.Context, id int64) (*model.Item, error)
}

type itemService struct {
	repo repository.ItemRepository
}

// NewItemService constructs a new ItemService.
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, in CreateItemInput) (*model.Item, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.Item{Name: *in.Name, Description: in.Description})
}

func (s *itemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}

func (s *itemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	if id < 0 {
		return nil, ErrInvalidID
	}
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

// Update loads the item first so a missing id is reported before the input is validated.
func (s *itemService) Update(ctx context.Context, id int64, in UpdateItemInput) (*model.Item, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	it.Name = *in.Name
	it.Description = in.Description

	updated, err := s.repo.Update(ctx, it)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *itemService) Delete(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}
