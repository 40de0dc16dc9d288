package mocks

import (
	"context"

	"story-server/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock type for the EmailSender type
type MockEmailSender struct {
	mock.Mock
}

// SendStoryNotification provides a mock function with given fields: ctx, email
func (_m *MockEmailSender) SendStoryNotification(ctx context.Context, email service.StoryEmail) (string, error) {
	ret := _m.Called(ctx, email)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, service.StoryEmail) string); ok {
		r0 = rf(ctx, email)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, service.StoryEmail) error); ok {
		r1 = rf(ctx, email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockEmailSender creates a new instance of MockEmailSender.
// The first argument is typically a *testing.T value.
func NewMockEmailSender(t interface {
	mock.TestingT
	Helper()
}) *MockEmailSender {
	m := &MockEmailSender{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.EmailSender = (*MockEmailSender)(nil)
