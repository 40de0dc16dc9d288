package mocks

import (
	"context"

	"story-server/internal/models"
	"story-server/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStoryRepository is a mock type for the StoryRepository type
type MockStoryRepository struct {
	mock.Mock
}

// Save provides a mock function with given fields: ctx, story
func (_m *MockStoryRepository) Save(ctx context.Context, story *models.SavedStory) error {
	ret := _m.Called(ctx, story)
	return ret.Error(0)
}

// List provides a mock function with given fields: ctx, userID
func (_m *MockStoryRepository) List(ctx context.Context, userID *uuid.UUID) ([]models.SavedStory, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.SavedStory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.SavedStory)
	}

	return r0, ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockStoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SavedStory, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.SavedStory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.SavedStory)
	}

	return r0, ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockStoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewMockStoryRepository creates a new instance of MockStoryRepository.
// The first argument is typically a *testing.T value.
func NewMockStoryRepository(t interface {
	mock.TestingT
	Helper()
}) *MockStoryRepository {
	m := &MockStoryRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.StoryRepository = (*MockStoryRepository)(nil)
