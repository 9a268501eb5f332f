package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"itemapi/internal/model"
	"itemapi/internal/repository"
	repoMocks "itemapi/internal/repository/mocks"
)

func strPtr(s string) *string { return &s }

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         CreateItemInput
		setupMocks func(mRepo *repoMocks.MockItemRepository)
		want       *model.Item
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			in:   CreateItemInput{Name: strPtr("X"), Description: strPtr("Y")},
			setupMocks: func(mRepo *repoMocks.MockItemRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(it *model.Item) bool {
					return it.ID == 0 && it.Name == "X" && *it.Description == "Y"
				})).Return(&model.Item{ID: 1, Name: "X", Description: strPtr("Y")}, nil)
			},
			want: &model.Item{ID: 1, Name: "X", Description: strPtr("Y")},
		},
		{
			name: "empty name is accepted",
			in:   CreateItemInput{Name: strPtr("")},
			setupMocks: func(mRepo *repoMocks.MockItemRepository) {
				mRepo.On("Create", ctx, &model.Item{Name: ""}).Return(&model.Item{ID: 2, Name: ""}, nil)
			},
			want: &model.Item{ID: 2, Name: ""},
		},
		{
			name:       "name required",
			in:         CreateItemInput{Description: strPtr("no name")},
			setupMocks: func(mRepo *repoMocks.MockItemRepository) {},
			wantErr:    ErrNameRequired,
		},
		{
			name: "repository error",
			in:   CreateItemInput{Name: strPtr("X")},
			setupMocks: func(mRepo *repoMocks.MockItemRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("insert item: connection refused"))
			},
			wantErrMsg: "insert item: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockItemRepository)
			tt.setupMocks(mRepo)

			svc := NewItemService(mRepo)
			got, err := svc.Create(ctx, tt.in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockItemRepository)
	items := []model.Item{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	mRepo.On("List", ctx).Return(items, nil).Once()

	svc := NewItemService(mRepo)
	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, items, got)
	mRepo.AssertExpectations(t)
}

func TestItemService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(1)).Return(&model.Item{ID: 1, Name: "A"}, nil)

		got, err := NewItemService(mRepo).Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "A", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(999)).Return(nil, repository.ErrNotFound)

		got, err := NewItemService(mRepo).Get(ctx, 999)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("negative id", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)

		got, err := NewItemService(mRepo).Get(ctx, -1)

		assert.ErrorIs(t, err, ErrInvalidID)
		assert.Nil(t, got)
		mRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(1)).Return(nil, errors.New("db down"))

		_, err := NewItemService(mRepo).Get(ctx, 1)

		assert.EqualError(t, err, "db down")
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites name and description", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(5)).Return(&model.Item{ID: 5, Name: "Old", Description: strPtr("Old")}, nil)
		mRepo.On("Update", ctx, &model.Item{ID: 5, Name: "New", Description: nil}).
			Return(&model.Item{ID: 5, Name: "New"}, nil)

		got, err := NewItemService(mRepo).Update(ctx, 5, UpdateItemInput{Name: strPtr("New")})

		require.NoError(t, err)
		assert.Equal(t, "New", got.Name)
		assert.Nil(t, got.Description)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(999)).Return(nil, repository.ErrNotFound)

		_, err := NewItemService(mRepo).Update(ctx, 999, UpdateItemInput{Name: strPtr("New")})

		assert.ErrorIs(t, err, ErrNotFound)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("row vanished before write", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(5)).Return(&model.Item{ID: 5, Name: "Old"}, nil)
		mRepo.On("Update", ctx, mock.Anything).Return(nil, repository.ErrNotFound)

		_, err := NewItemService(mRepo).Update(ctx, 5, UpdateItemInput{Name: strPtr("New")})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("name required", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(5)).Return(&model.Item{ID: 5, Name: "Old"}, nil)

		_, err := NewItemService(mRepo).Update(ctx, 5, UpdateItemInput{})

		assert.ErrorIs(t, err, ErrNameRequired)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing item reported before missing name", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(999)).Return(nil, repository.ErrNotFound)

		_, err := NewItemService(mRepo).Update(ctx, 999, UpdateItemInput{})

		assert.ErrorIs(t, err, ErrNotFound)
		mRepo.AssertExpectations(t)
	})

	t.Run("empty name is accepted", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(5)).Return(&model.Item{ID: 5, Name: "Old"}, nil)
		mRepo.On("Update", ctx, &model.Item{ID: 5, Name: ""}).Return(&model.Item{ID: 5, Name: ""}, nil)

		got, err := NewItemService(mRepo).Update(ctx, 5, UpdateItemInput{Name: strPtr("")})

		require.NoError(t, err)
		assert.Equal(t, "", got.Name)
		mRepo.AssertExpectations(t)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns pre-deletion state", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(3)).Return(&model.Item{ID: 3, Name: "Gone", Description: strPtr("soon")}, nil)
		mRepo.On("Delete", ctx, int64(3)).Return(nil)

		got, err := NewItemService(mRepo).Delete(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "Gone", got.Name)
		assert.Equal(t, "soon", *got.Description)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(999)).Return(nil, repository.ErrNotFound)

		_, err := NewItemService(mRepo).Delete(ctx, 999)

		assert.ErrorIs(t, err, ErrNotFound)
		mRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete error", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("FindByID", ctx, int64(3)).Return(&model.Item{ID: 3}, nil)
		mRepo.On("Delete", ctx, int64(3)).Return(errors.New("delete item 3: db down"))

		_, err := NewItemService(mRepo).Delete(ctx, 3)

		assert.EqualError(t, err, "delete item 3: db down")
	})
}
