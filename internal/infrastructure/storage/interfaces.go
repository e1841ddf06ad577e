package storage

import "context"

// Storage persists a snapshot of post metadata between restarts.
type Storage interface {
	Backup(ctx context.Context, meta map[int64]map[string]string) error
	Restore(ctx context.Context) (map[int64]map[string]string, error)
	Close(ctx context.Context) error
}
