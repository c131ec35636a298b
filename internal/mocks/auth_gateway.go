package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nockpoint/internal/domain"
)

// MockAuthGateway is a mock of domain.AuthGateway.
type MockAuthGateway struct {
	mock.Mock
}

// NewMockAuthGateway creates a MockAuthGateway bound to t.
func NewMockAuthGateway(t testingT) *MockAuthGateway {
	m := &MockAuthGateway{}
	register(&m.Mock, t)
	return m
}

// MockAuthGatewayExpecter sets typed expectations.
type MockAuthGatewayExpecter struct {
	mock *mock.Mock
}

func (m *MockAuthGateway) EXPECT() *MockAuthGatewayExpecter {
	return &MockAuthGatewayExpecter{mock: &m.Mock}
}

func (m *MockAuthGateway) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	ret := m.Called(ctx, username, password)
	result, _ := ret.Get(0).(*domain.AuthResult)
	return result, errorAt(ret, 1)
}

func (e *MockAuthGatewayExpecter) Login(ctx, username, password any) *mock.Call {
	return e.mock.On("Login", ctx, username, password)
}

func (m *MockAuthGateway) Verify(ctx context.Context, token string) (*domain.UserProfile, error) {
	ret := m.Called(ctx, token)
	profile, _ := ret.Get(0).(*domain.UserProfile)
	return profile, errorAt(ret, 1)
}

func (e *MockAuthGatewayExpecter) Verify(ctx, token any) *mock.Call {
	return e.mock.On("Verify", ctx, token)
}
