package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCredentialStore is a mock of domain.CredentialStore.
type MockCredentialStore struct {
	mock.Mock
}

// NewMockCredentialStore creates a MockCredentialStore bound to t.
func NewMockCredentialStore(t testingT) *MockCredentialStore {
	m := &MockCredentialStore{}
	register(&m.Mock, t)
	return m
}

// MockCredentialStoreExpecter sets typed expectations.
type MockCredentialStoreExpecter struct {
	mock *mock.Mock
}

func (m *MockCredentialStore) EXPECT() *MockCredentialStoreExpecter {
	return &MockCredentialStoreExpecter{mock: &m.Mock}
}

func (m *MockCredentialStore) Put(ctx context.Context, key, value string) error {
	ret := m.Called(ctx, key, value)
	return errorAt(ret, 0)
}

func (e *MockCredentialStoreExpecter) Put(ctx, key, value any) *mock.Call {
	return e.mock.On("Put", ctx, key, value)
}

func (m *MockCredentialStore) Get(ctx context.Context, key string) (string, bool, error) {
	ret := m.Called(ctx, key)
	return ret.String(0), ret.Bool(1), errorAt(ret, 2)
}

func (e *MockCredentialStoreExpecter) Get(ctx, key any) *mock.Call {
	return e.mock.On("Get", ctx, key)
}

func (m *MockCredentialStore) Delete(ctx context.Context, key string) error {
	ret := m.Called(ctx, key)
	return errorAt(ret, 0)
}

func (e *MockCredentialStoreExpecter) Delete(ctx, key any) *mock.Call {
	return e.mock.On("Delete", ctx, key)
}
