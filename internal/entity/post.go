package entity

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPending   PostStatus = "pending"
	StatusFuture    PostStatus = "future"
	StatusPublish   PostStatus = "publish"
	StatusPrivate   PostStatus = "private"
	StatusAutoDraft PostStatus = "auto-draft"
)

// Post is the host platform's content record. The platform owns and
// mutates it; this service only reads.
type Post struct {
	ID     int64      `json:"id"`
	Type   string     `json:"type"`
	Title  string     `json:"title"`
	Status PostStatus `json:"status"`
	Slug   string     `json:"slug"`

	// Live is the platform's own report of whether the post is already
	// publicly visible, independent of Status.
	Live bool `json:"live"`
}
