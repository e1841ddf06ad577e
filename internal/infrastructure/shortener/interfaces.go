package shortener

import (
	"context"

	"github.com/shortsync/shortsync/internal/entity"
)

// Client talks to the remote shortening service. Omitted request fields
// (nil Tags in particular) leave the remote record's fields untouched.
type Client interface {
	Create(ctx context.Context, req entity.SyncRequest) (*entity.ShortLink, error)
	Update(ctx context.Context, shortCode string, req entity.SyncRequest) (*entity.ShortLink, error)
}
