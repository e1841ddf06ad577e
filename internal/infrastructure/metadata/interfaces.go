package metadata

import "context"

// Metadata keys used for the post/short-link association.
const (
	KeyLongURL   = "shortsync_long_url"
	KeyShortURL  = "shortsync_short_url"
	KeyShortCode = "shortsync_short_code"
)

// Store is a per-post key/value metadata store.
type Store interface {
	Get(ctx context.Context, postID int64, key string) (string, error)
	Set(ctx context.Context, postID int64, key, value string) error
	// SetMany writes all values or none of them.
	SetMany(ctx context.Context, postID int64, values map[string]string) error

	Ping(ctx context.Context) error

	Backup(ctx context.Context) error
	Restore(ctx context.Context) error
	Close(ctx context.Context) error
}
