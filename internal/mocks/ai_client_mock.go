package mocks

import (
	"context"

	"story-server/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAIClient is a mock type for the AIClient type
type MockAIClient struct {
	mock.Mock
}

// GenerateText provides a mock function with given fields: ctx, instr
func (_m *MockAIClient) GenerateText(ctx context.Context, instr service.Instructions) (string, error) {
	ret := _m.Called(ctx, instr)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, service.Instructions) string); ok {
		r0 = rf(ctx, instr)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, service.Instructions) error); ok {
		r1 = rf(ctx, instr)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockAIClient creates a new instance of MockAIClient. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockAIClient(t interface {
	mock.TestingT
	Helper()
}) *MockAIClient {
	m := &MockAIClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.AIClient = (*MockAIClient)(nil)
