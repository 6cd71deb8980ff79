// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
)

type MockOrderNotifier struct {
	mock.Mock
}

func (m *MockOrderNotifier) OrderPlaced(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// NewMockOrderNotifier creates a mock that asserts its expectations when the
// test finishes.
func NewMockOrderNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderNotifier {
	m := &MockOrderNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
