package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nockpoint/internal/domain"
)

// MockConfigRepository is a mock of domain.ConfigRepository.
type MockConfigRepository struct {
	mock.Mock
}

// NewMockConfigRepository creates a MockConfigRepository bound to t.
func NewMockConfigRepository(t testingT) *MockConfigRepository {
	m := &MockConfigRepository{}
	register(&m.Mock, t)
	return m
}

// MockConfigRepositoryExpecter sets typed expectations.
type MockConfigRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockConfigRepository) EXPECT() *MockConfigRepositoryExpecter {
	return &MockConfigRepositoryExpecter{mock: &m.Mock}
}

func (m *MockConfigRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	ret := m.Called(ctx)
	settings, _ := ret.Get(0).(domain.Settings)
	return settings, errorAt(ret, 1)
}

func (e *MockConfigRepositoryExpecter) GetSettings(ctx any) *mock.Call {
	return e.mock.On("GetSettings", ctx)
}

func (m *MockConfigRepository) SetAPIURL(ctx context.Context, apiURL string) error {
	ret := m.Called(ctx, apiURL)
	return errorAt(ret, 0)
}

func (e *MockConfigRepositoryExpecter) SetAPIURL(ctx, apiURL any) *mock.Call {
	return e.mock.On("SetAPIURL", ctx, apiURL)
}

func (m *MockConfigRepository) SaveConfig(ctx context.Context) error {
	ret := m.Called(ctx)
	return errorAt(ret, 0)
}

func (e *MockConfigRepositoryExpecter) SaveConfig(ctx any) *mock.Call {
	return e.mock.On("SaveConfig", ctx)
}

func (m *MockConfigRepository) LoadConfig(ctx context.Context) error {
	ret := m.Called(ctx)
	return errorAt(ret, 0)
}

func (e *MockConfigRepositoryExpecter) LoadConfig(ctx any) *mock.Call {
	return e.mock.On("LoadConfig", ctx)
}

// MockConfigProvider is a mock of domain.ConfigProvider.
type MockConfigProvider struct {
	mock.Mock
}

// NewMockConfigProvider creates a MockConfigProvider bound to t.
func NewMockConfigProvider(t testingT) *MockConfigProvider {
	m := &MockConfigProvider{}
	register(&m.Mock, t)
	return m
}

func (m *MockConfigProvider) GetConfigPath() (string, error) {
	ret := m.Called()
	return ret.String(0), errorAt(ret, 1)
}

func (m *MockConfigProvider) GetCredentialsDir() (string, error) {
	ret := m.Called()
	return ret.String(0), errorAt(ret, 1)
}
