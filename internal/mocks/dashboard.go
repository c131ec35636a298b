package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nockpoint/internal/domain"
)

// MockDashboardLoader is a mock of domain.DashboardLoader.
type MockDashboardLoader struct {
	mock.Mock
}

// NewMockDashboardLoader creates a MockDashboardLoader bound to t.
func NewMockDashboardLoader(t testingT) *MockDashboardLoader {
	m := &MockDashboardLoader{}
	register(&m.Mock, t)
	return m
}

// MockDashboardLoaderExpecter sets typed expectations.
type MockDashboardLoaderExpecter struct {
	mock *mock.Mock
}

func (m *MockDashboardLoader) EXPECT() *MockDashboardLoaderExpecter {
	return &MockDashboardLoaderExpecter{mock: &m.Mock}
}

func (m *MockDashboardLoader) Load(ctx context.Context, filter domain.EventFilter) (*domain.Dashboard, error) {
	ret := m.Called(ctx, filter)
	dashboard, _ := ret.Get(0).(*domain.Dashboard)
	return dashboard, errorAt(ret, 1)
}

func (e *MockDashboardLoaderExpecter) Load(ctx, filter any) *mock.Call {
	return e.mock.On("Load", ctx, filter)
}
