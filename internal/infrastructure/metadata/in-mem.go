package metadata

import (
	"context"
	"sync"

	"github.com/shortsync/shortsync/internal/infrastructure/storage"
)

type InMemStore struct {
	meta   map[int64]map[string]string
	mutex  sync.RWMutex
	backup storage.Storage
}

func NewInMemStore(backup storage.Storage) *InMemStore {
	return &InMemStore{
		meta:   make(map[int64]map[string]string),
		backup: backup,
	}
}

func (s *InMemStore) Get(ctx context.Context, postID int64, key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.meta[postID][key], nil
}

func (s *InMemStore) Set(ctx context.Context, postID int64, key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.set(postID, key, value)
	return nil
}

func (s *InMemStore) SetMany(ctx context.Context, postID int64, values map[string]string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key, value := range values {
		s.set(postID, key, value)
	}
	return nil
}

func (s *InMemStore) set(postID int64, key, value string) {
	if s.meta[postID] == nil {
		s.meta[postID] = make(map[string]string)
	}
	s.meta[postID][key] = value
}

func (s *InMemStore) Ping(ctx context.Context) error {
	return nil
}

func (s *InMemStore) Backup(ctx context.Context) error {
	if s.backup == nil {
		return nil
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.backup.Backup(ctx, s.meta)
}

func (s *InMemStore) Restore(ctx context.Context) error {
	if s.backup == nil {
		return nil
	}

	meta, err := s.backup.Restore(ctx)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.meta = meta
	return nil
}

func (s *InMemStore) Close(ctx context.Context) error {
	if s.backup == nil {
		return nil
	}
	return s.backup.Close(ctx)
}
