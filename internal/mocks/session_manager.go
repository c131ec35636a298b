package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nockpoint/internal/domain"
)

// MockSessionManager is a mock of domain.SessionManager.
type MockSessionManager struct {
	mock.Mock
}

// NewMockSessionManager creates a MockSessionManager bound to t.
func NewMockSessionManager(t testingT) *MockSessionManager {
	m := &MockSessionManager{}
	register(&m.Mock, t)
	return m
}

// MockSessionManagerExpecter sets typed expectations.
type MockSessionManagerExpecter struct {
	mock *mock.Mock
}

func (m *MockSessionManager) EXPECT() *MockSessionManagerExpecter {
	return &MockSessionManagerExpecter{mock: &m.Mock}
}

func (m *MockSessionManager) AuthHeaderValue() (string, bool) {
	ret := m.Called()
	return ret.String(0), ret.Bool(1)
}

func (e *MockSessionManagerExpecter) AuthHeaderValue() *mock.Call {
	return e.mock.On("AuthHeaderValue")
}

func (m *MockSessionManager) Logout(ctx context.Context) error {
	ret := m.Called(ctx)
	return errorAt(ret, 0)
}

func (e *MockSessionManagerExpecter) Logout(ctx any) *mock.Call {
	return e.mock.On("Logout", ctx)
}

func (m *MockSessionManager) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	ret := m.Called(ctx, username, password)
	result, _ := ret.Get(0).(*domain.AuthResult)
	return result, errorAt(ret, 1)
}

func (e *MockSessionManagerExpecter) Login(ctx, username, password any) *mock.Call {
	return e.mock.On("Login", ctx, username, password)
}

func (m *MockSessionManager) Validate(ctx context.Context) (domain.SessionState, error) {
	ret := m.Called(ctx)
	state, _ := ret.Get(0).(domain.SessionState)
	return state, errorAt(ret, 1)
}

func (e *MockSessionManagerExpecter) Validate(ctx any) *mock.Call {
	return e.mock.On("Validate", ctx)
}

func (m *MockSessionManager) CurrentState() domain.SessionState {
	ret := m.Called()
	state, _ := ret.Get(0).(domain.SessionState)
	return state
}

func (e *MockSessionManagerExpecter) CurrentState() *mock.Call {
	return e.mock.On("CurrentState")
}

func (m *MockSessionManager) Subscribe() (<-chan domain.SessionState, func()) {
	ret := m.Called()
	ch, _ := ret.Get(0).(<-chan domain.SessionState)
	cancel, _ := ret.Get(1).(func())
	if cancel == nil {
		cancel = func() {}
	}
	return ch, cancel
}

func (e *MockSessionManagerExpecter) Subscribe() *mock.Call {
	return e.mock.On("Subscribe")
}
