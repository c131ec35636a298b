package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPasswordReader is a mock of domain.PasswordReader.
type MockPasswordReader struct {
	mock.Mock
}

// NewMockPasswordReader creates a MockPasswordReader bound to t.
func NewMockPasswordReader(t testingT) *MockPasswordReader {
	m := &MockPasswordReader{}
	register(&m.Mock, t)
	return m
}

// MockPasswordReaderExpecter sets typed expectations.
type MockPasswordReaderExpecter struct {
	mock *mock.Mock
}

func (m *MockPasswordReader) EXPECT() *MockPasswordReaderExpecter {
	return &MockPasswordReaderExpecter{mock: &m.Mock}
}

func (m *MockPasswordReader) ReadPassword(ctx context.Context, prompt string) (string, error) {
	ret := m.Called(ctx, prompt)
	return ret.String(0), errorAt(ret, 1)
}

func (e *MockPasswordReaderExpecter) ReadPassword(ctx, prompt any) *mock.Call {
	return e.mock.On("ReadPassword", ctx, prompt)
}

func (m *MockPasswordReader) IsInteractive() bool {
	ret := m.Called()
	return ret.Bool(0)
}

func (e *MockPasswordReaderExpecter) IsInteractive() *mock.Call {
	return e.mock.On("IsInteractive")
}
