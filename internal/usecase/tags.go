package usecase

import "context"

// TagAggregator appends the site hostname and the acting user's login to
// a base tag list.
type TagAggregator struct {
	siteHost    func(ctx context.Context) string
	currentUser func(ctx context.Context) string
}

func NewTagAggregator(
	siteHost func(ctx context.Context) string,
	currentUser func(ctx context.Context) string) *TagAggregator {

	return &TagAggregator{
		siteHost:    siteHost,
		currentUser: currentUser,
	}
}

// Augment returns base plus a site tag and a user tag. When either the
// site hostname or the acting user cannot be resolved (unattended saves),
// it returns nil: the caller must omit tags from the request entirely,
// since sending an empty list would clear the remotely stored tags.
func (a *TagAggregator) Augment(ctx context.Context, base []string) []string {
	host := a.siteHost(ctx)
	user := a.currentUser(ctx)

	if host == "" || user == "" {
		return nil
	}

	tags := make([]string, 0, len(base)+2)
	tags = append(tags, base...)
	tags = append(tags, "site-"+host, "user-"+user)

	return tags
}
