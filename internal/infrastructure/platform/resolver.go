package platform

import (
	"context"
	"net/url"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/shortsync/shortsync/internal/entity"
)

// Resolver implements the host platform's URL-side hooks: permalink
// construction, slug sanitization and site identity.
type Resolver struct {
	siteURL string
}

func NewResolver(siteURL string) *Resolver {
	return &Resolver{
		siteURL: strings.TrimSuffix(siteURL, "/"),
	}
}

// Permalink builds the public URL for a post. The platform's permalink
// structure here is "<site>/<slug>/"; a post without a slug has no
// permalink.
func (r *Resolver) Permalink(post entity.Post) (string, error) {
	if post.Slug == "" {
		return "", errors.Errorf("post %d has no slug", post.ID)
	}
	return r.siteURL + "/" + post.Slug + "/", nil
}

// SanitizeSlug lowercases the text and collapses every run of
// non-alphanumeric characters into a single dash.
func (r *Resolver) SanitizeSlug(text string) string {
	var b strings.Builder
	dash := false

	for _, c := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			b.WriteRune(c)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// SiteHost returns the canonical hostname of the site, or empty when the
// site URL is unset or unparseable.
func (r *Resolver) SiteHost(ctx context.Context) string {
	if r.siteURL == "" {
		return ""
	}
	u, err := url.Parse(r.siteURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

type ctxKey int

const actingUserKey ctxKey = iota

// WithActingUser marks ctx with the login of the user performing the
// current action.
func WithActingUser(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, actingUserKey, login)
}

// ActingUser returns the acting user's login, or empty for unattended
// saves.
func ActingUser(ctx context.Context) string {
	login, _ := ctx.Value(actingUserKey).(string)
	return login
}
