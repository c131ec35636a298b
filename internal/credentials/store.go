// Package credentials persists the session token and cached user profile.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
)

// Storage keys for the session token and the cached profile.
const (
	TokenKey   = "nockpoint_auth_token"
	ProfileKey = "nockpoint_user_data"
)

const (
	dirPermissions  = 0o700
	filePermissions = 0o600
	fileSuffix      = ".cred"
)

// FileStore keeps one owner-only file per key under a private directory.
type FileStore struct {
	fs     domain.FileSystemAdapter
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	ready bool
}

// NewFileStore creates a store rooted at dir. The directory is created on first use.
func NewFileStore(fileSystem domain.FileSystemAdapter, dir string, logger *slog.Logger) *FileStore {
	return &FileStore{
		fs:     fileSystem,
		dir:    dir,
		logger: logger,
	}
}

// Put overwrites key with value. The write is atomic: a reader sees the
// old value or the new one, never a torn file.
func (s *FileStore) Put(ctx context.Context, key, value string) error {
	if err := s.ensureDir(); err != nil {
		return apperrors.NewStorageError("put", key, err)
	}

	target := s.path(key)
	tmp := filepath.Join(s.dir, "."+uuid.NewString()+".tmp")
	if err := s.fs.WriteFile(tmp, []byte(value), filePermissions); err != nil {
		return apperrors.NewStorageError("put", key, err)
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return apperrors.NewStorageError("put", key, err)
	}

	s.logger.DebugContext(ctx, "Stored credential", "key", key)
	return nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := s.fs.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, apperrors.NewStorageError("get", key, err)
	}
	return string(data), true, nil
}

// Delete removes key. Missing keys are ignored.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := s.fs.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.NewStorageError("delete", key, err)
	}
	s.logger.DebugContext(ctx, "Deleted credential", "key", key)
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileSuffix)
}

func (s *FileStore) ensureDir() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}
	if err := s.fs.MkdirAll(s.dir, dirPermissions); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}
	s.ready = true
	return nil
}

// MemoryStore is a process-local store, used when persistence is disabled.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Put overwrites key with value.
func (s *MemoryStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Delete removes key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// EncodeProfile serializes a profile for storage under ProfileKey.
func EncodeProfile(profile domain.UserProfile) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode user profile: %w", err)
	}
	return string(data), nil
}

// DecodeProfile parses a value stored under ProfileKey.
func DecodeProfile(value string) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to decode user profile: %w", err)
	}
	return profile, nil
}
