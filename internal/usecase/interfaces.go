package usecase

import (
	"context"

	"github.com/shortsync/shortsync/internal/entity"
)

type Syncer interface {
	// OnPostSaved runs one sync attempt for the saved post. It never
	// returns an error: the host platform's save flow must not observe
	// failures from this integration.
	OnPostSaved(ctx context.Context, postID int64)

	GetAssociation(ctx context.Context, postID int64) (*entity.LinkAssociation, error)
}

// PostSource reads content records from the host platform. A nil post
// with nil error means the record does not exist.
type PostSource interface {
	GetPost(ctx context.Context, id int64) (*entity.Post, error)
}

// ErrorSink receives sync errors when configured; otherwise they go to
// the diagnostic log.
type ErrorSink interface {
	ReportError(ctx context.Context, err error)
}

// Hooks are the host platform callbacks and extension filters the sync
// engine is composed with. Permalink, SanitizeSlug, SiteURL and
// CurrentUser come from the platform; FilterLongURL and FilterTags are
// the two extension points external code may use to customize syncing.
type Hooks struct {
	Permalink    func(post entity.Post) (string, error)
	SanitizeSlug func(text string) string
	SiteHost     func(ctx context.Context) string
	CurrentUser  func(ctx context.Context) string

	// PublishedCheck reports whether the platform already considers the
	// post publicly visible, independent of its status field.
	PublishedCheck func(post entity.Post) bool

	FilterLongURL func(longURL string) string
	FilterTags    func(ctx context.Context, tags []string) []string
}
