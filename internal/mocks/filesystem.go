package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"
)

// MockFileSystemAdapter is a mock of domain.FileSystemAdapter.
type MockFileSystemAdapter struct {
	mock.Mock
}

// NewMockFileSystemAdapter creates a MockFileSystemAdapter bound to t.
func NewMockFileSystemAdapter(t testingT) *MockFileSystemAdapter {
	m := &MockFileSystemAdapter{}
	register(&m.Mock, t)
	return m
}

// MockFileSystemAdapterExpecter sets typed expectations.
type MockFileSystemAdapterExpecter struct {
	mock *mock.Mock
}

func (m *MockFileSystemAdapter) EXPECT() *MockFileSystemAdapterExpecter {
	return &MockFileSystemAdapterExpecter{mock: &m.Mock}
}

func (m *MockFileSystemAdapter) ReadFile(path string) ([]byte, error) {
	ret := m.Called(path)
	data, _ := ret.Get(0).([]byte)
	return data, errorAt(ret, 1)
}

func (e *MockFileSystemAdapterExpecter) ReadFile(path any) *mock.Call {
	return e.mock.On("ReadFile", path)
}

func (m *MockFileSystemAdapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	ret := m.Called(path, data, perm)
	return errorAt(ret, 0)
}

func (e *MockFileSystemAdapterExpecter) WriteFile(path, data, perm any) *mock.Call {
	return e.mock.On("WriteFile", path, data, perm)
}

func (m *MockFileSystemAdapter) Rename(oldPath, newPath string) error {
	ret := m.Called(oldPath, newPath)
	return errorAt(ret, 0)
}

func (e *MockFileSystemAdapterExpecter) Rename(oldPath, newPath any) *mock.Call {
	return e.mock.On("Rename", oldPath, newPath)
}

func (m *MockFileSystemAdapter) MkdirAll(path string, perm os.FileMode) error {
	ret := m.Called(path, perm)
	return errorAt(ret, 0)
}

func (e *MockFileSystemAdapterExpecter) MkdirAll(path, perm any) *mock.Call {
	return e.mock.On("MkdirAll", path, perm)
}

func (m *MockFileSystemAdapter) Remove(path string) error {
	ret := m.Called(path)
	return errorAt(ret, 0)
}

func (e *MockFileSystemAdapterExpecter) Remove(path any) *mock.Call {
	return e.mock.On("Remove", path)
}

func (m *MockFileSystemAdapter) Stat(path string) (os.FileInfo, error) {
	ret := m.Called(path)
	info, _ := ret.Get(0).(os.FileInfo)
	return info, errorAt(ret, 1)
}

func (e *MockFileSystemAdapterExpecter) Stat(path any) *mock.Call {
	return e.mock.On("Stat", path)
}

func (m *MockFileSystemAdapter) UserHomeDir() (string, error) {
	ret := m.Called()
	return ret.String(0), errorAt(ret, 1)
}

func (e *MockFileSystemAdapterExpecter) UserHomeDir() *mock.Call {
	return e.mock.On("UserHomeDir")
}
